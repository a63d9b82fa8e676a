package pondfeeder

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when the scene is in debug mode.
type debugStats struct {
	buildTime     time.Duration
	submitTime    time.Duration
	commandCount  int
	drawCallCount int
}

// debugLog logs timing and draw-call stats at debug level.
func (r *Renderer) debugLog(stats debugStats) {
	log.Debug().
		Dur("build", stats.buildTime).
		Dur("submit", stats.submitTime).
		Dur("total", stats.buildTime+stats.submitTime).
		Int("commands", stats.commandCount).
		Int("drawCalls", stats.drawCallCount).
		Msg("frame")
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("pondfeeder debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
// Pellets are attached under the root, so this trips when pruning stalls.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		log.Warn().Str("node", n.Name).Int("children", len(n.children)).
			Int("threshold", debugMaxChildCount).Msg("child count exceeds threshold")
	}
}
