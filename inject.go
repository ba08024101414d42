package wheelie

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// syntheticPointerEvent is one frame of injected mouse input. It replaces
// the live ebiten state for the frame it is consumed in, including the
// modifier snapshot.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool // primary button held
	middle  bool // middle button held
	wheel   float64
	mods    KeyModifiers
}

// InjectPress queues a primary button press at (x, y) with the given
// modifiers held. The event is consumed on the next Update.
func (s *Screen) InjectPress(x, y float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, mods: mods,
	})
}

// InjectMove queues a pointer move to (x, y) with the primary button held.
// Use it between InjectPress and InjectRelease to simulate a drag.
func (s *Screen) InjectMove(x, y float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, mods: mods,
	})
}

// InjectHover queues a pointer move to (x, y) with no button held.
func (s *Screen) InjectHover(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a primary button release at (x, y).
func (s *Screen) InjectRelease(x, y float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, mods: mods,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Screen) InjectClick(x, y float64, mods KeyModifiers) {
	s.InjectPress(x, y, mods)
	s.InjectRelease(x, y, mods)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// `frames` frames. Minimum frames is 2 (press + release).
func (s *Screen) InjectDrag(fromX, fromY, toX, toY float64, frames int, mods KeyModifiers) {
	s.InjectDragEased(fromX, fromY, toX, toY, frames, mods, ease.Linear)
}

// InjectDragEased is InjectDrag with the intermediate positions shaped by
// an easing function, so drags can speed up or slow down along the path.
func (s *Screen) InjectDragEased(fromX, fromY, toX, toY float64, frames int, mods KeyModifiers, fn ease.TweenFunc) {
	if frames < 2 {
		frames = 2
	}
	if fn == nil {
		fn = ease.Linear
	}
	s.InjectPress(fromX, fromY, mods)
	steps := frames - 2
	duration := float32(steps + 1)
	tx := gween.New(float32(fromX), float32(toX), duration, fn)
	ty := gween.New(float32(fromY), float32(toY), duration, fn)
	for i := 0; i < steps; i++ {
		x, _ := tx.Update(1)
		y, _ := ty.Update(1)
		s.InjectMove(float64(x), float64(y), mods)
	}
	s.InjectRelease(toX, toY, mods)
}

// InjectScroll queues a single wheel tick at (x, y). Negative amounts
// scroll down.
func (s *Screen) InjectScroll(x, y, amount float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y, wheel: amount, mods: mods,
	})
}

// InjectMiddleClick queues a middle button press and release at (x, y),
// the default sort trigger. Consumes two frames.
func (s *Screen) InjectMiddleClick(x, y float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue,
		syntheticPointerEvent{x: x, y: y, middle: true, mods: mods},
		syntheticPointerEvent{x: x, y: y, mods: mods},
	)
}

// PendingInjections returns the number of injected frames not yet consumed.
func (s *Screen) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (live input
// is skipped for the frame).
func (s *Screen) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, evt.pressed, evt.middle, evt.wheel, evt.mods)
	return true
}
