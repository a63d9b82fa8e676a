// Package ecs routes feed control gestures through a Donburi world.
//
// Register a FeedQueue as the game's feed source and forward button gestures
// into it:
//
//	world := donburi.NewWorld()
//	queue := ecs.NewFeedQueue(world)
//	button.OnGesture(queue.Publish)
//	game.SetFeedSource(queue)
//
// Other ECS systems can subscribe to FeedEventType to react to the same
// gestures.
package ecs
