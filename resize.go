package pondfeeder

// Resize syncs the camera projection and the render target with a container
// of width x height pixels. Non-positive sizes are ignored. Calling it again
// with the same size changes nothing.
func Resize(cam *PerspectiveCamera, r *Renderer, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if cam != nil {
		cam.Aspect = float64(width) / float64(height)
		cam.UpdateProjectionMatrix()
	}
	if r != nil {
		r.SetSize(width, height)
	}
}
