// Package wheelie turns pointer gestures on an inventory screen into bulk
// slot operations.
//
// A [Screen] wraps one open container screen. It reads the mouse and the
// modifier keys, resolves the slot under the pointer, and routes each
// gesture to a [Transfer] helper, the shared [ClickQueue], or a [Sorter].
// Wheelie never moves items itself; those collaborators do.
//
// # Quick start
//
//	queue := wheelie.NewClickQueue(sink)
//	container := wheelie.NewContainer(syncID)
//	container.AddGrid(9, 3, 9, 8, 84, 16, 18)
//
//	screen := wheelie.NewScreen(wheelie.ScreenOptions{
//		Container:   container,
//		Config:      wheelie.DefaultConfig(),
//		Queue:       queue,
//		NewTransfer: func(s *wheelie.Screen) wheelie.Transfer { return newHelper(s) },
//		Sorter:      sorter,
//	})
//	if err := screen.Open(); err != nil {
//		log.Fatal(err)
//	}
//	defer screen.Close()
//
// Then call [Screen.Update] and [ClickQueue.Tick] once per game tick.
//
// # Gestures
//
// Primary-button presses and drags are routed by modifier, Alt (when alt
// dropping is enabled) first, then Shift, then Control:
//
//	drag  alt          drop stack locked, per slot
//	drag  shift        send stack locked, per slot
//	drag  ctrl         send all of a kind, per slot
//	click alt          throw the hovered stack
//	click alt+ctrl     drop all of a kind
//	click alt+ctrl+shift drop all from the hovered section
//	click ctrl         send all of a kind
//	click ctrl+shift   send all from the hovered section
//
// With better fast dragging enabled, long drag segments are sampled every
// 16 units (see [SampleDrag]) so slots the pointer skipped between frames
// are acted on too.
//
// The wheel transfers items ([Screen.HandleScroll]); scrolling down over an
// armor piece in the player inventory equips it through three pickup clicks.
// A middle click sorts ([Screen.TriggerSort]) with the mode configured for
// the held modifier.
//
// Modifiers are sampled once when a gesture starts. Every slot touched by
// the gesture sees the same snapshot.
//
// # Testing
//
// Use the Inject methods or a [GestureRunner] script to drive a screen
// without a window. ECS users can receive every [DispatchEvent] through the
// Donburi adapter in wheelie/ecs.
package wheelie
