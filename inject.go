package pondfeeder

// syntheticGesture is one queued frame of injected input. A zero-value entry
// with idle set consumes a frame without emitting anything.
type syntheticGesture struct {
	gesture Gesture
	idle    bool
}

// InjectPress queues a press on the feed control. Injected events are
// consumed one per frame, and real input is ignored on frames that consume one.
func (g *Game) InjectPress() {
	g.injectQueue = append(g.injectQueue, syntheticGesture{gesture: GesturePress})
}

// InjectRelease queues a release of the feed control.
func (g *Game) InjectRelease() {
	g.injectQueue = append(g.injectQueue, syntheticGesture{gesture: GestureRelease})
}

// InjectTouch queues a touch start followed by a touch end after held frames.
func (g *Game) InjectTouch(held int) {
	g.injectQueue = append(g.injectQueue, syntheticGesture{gesture: GestureTouchStart})
	g.injectIdle(held - 1)
	g.injectQueue = append(g.injectQueue, syntheticGesture{gesture: GestureTouchEnd})
}

// InjectHold is a convenience that presses, keeps the control held for
// frames ticks in total, then releases. Minimum frames is 1.
func (g *Game) InjectHold(frames int) {
	if frames < 1 {
		frames = 1
	}
	g.InjectPress()
	g.injectIdle(frames - 1)
	g.InjectRelease()
}

func (g *Game) injectIdle(frames int) {
	for i := 0; i < frames; i++ {
		g.injectQueue = append(g.injectQueue, syntheticGesture{idle: true})
	}
}

// processInjected pops one queued entry and applies it. Returns true if
// an entry was consumed.
func (g *Game) processInjected() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if evt.idle {
		return true
	}
	if g.button != nil {
		g.button.Handle(evt.gesture)
	} else {
		g.signal.Send(evt.gesture.Feeding())
	}
	return true
}
