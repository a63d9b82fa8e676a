package ecs

import (
	"github.com/phanxgames/pondfeeder"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FeedEvent is published for every feed control gesture.
type FeedEvent struct {
	Gesture pondfeeder.Gesture
	Feeding bool
}

// FeedEventType is the Donburi event type for feed gestures.
var FeedEventType = events.NewEventType[FeedEvent]()

// FeedQueue is a pondfeeder.FeedSource backed by Donburi events. Gestures are
// queued with Publish and applied in order when Feeding is called, so the
// tick observes the state left by the last gesture.
type FeedQueue struct {
	world   donburi.World
	feeding bool
	seen    int
}

// NewFeedQueue subscribes a queue to FeedEventType on world.
func NewFeedQueue(world donburi.World) *FeedQueue {
	q := &FeedQueue{world: world}
	FeedEventType.Subscribe(world, q.onFeed)
	return q
}

// Publish queues a gesture.
func (q *FeedQueue) Publish(g pondfeeder.Gesture) {
	FeedEventType.Publish(q.world, FeedEvent{Gesture: g, Feeding: g.Feeding()})
}

// Feeding processes queued events and returns the resulting state.
func (q *FeedQueue) Feeding() bool {
	FeedEventType.ProcessEvents(q.world)
	return q.feeding
}

// Seen returns the number of events processed so far.
func (q *FeedQueue) Seen() int {
	return q.seen
}

func (q *FeedQueue) onFeed(_ donburi.World, e FeedEvent) {
	q.feeding = e.Feeding
	q.seen++
}
