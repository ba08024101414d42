package wheelie

import "github.com/hajimehoshi/ebiten/v2"

// --- Per-pointer state ---

type pointerState struct {
	down       bool
	middleDown bool
	lastX      float64
	lastY      float64
	mods       KeyModifiers // captured at press time
	consumed   bool         // whether the press was taken by a bulk gesture
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	click    []handler[ClickContext]
	scroll   []handler[ScrollContext]
	dispatch []handler[DispatchEvent]
	nextID   uint32
}

// EventType identifies a kind of screen callback.
type EventType uint8

const (
	EventClickPassthrough  EventType = iota // a press no bulk gesture consumed
	EventScrollPassthrough                  // a wheel tick that resolved to Pass
	EventDispatch                           // an action the dispatcher performed
)

// CallbackHandle allows removing a registered screen callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventClickPassthrough:
		h.reg.click = removeHandler(h.reg.click, h.id)
	case EventScrollPassthrough:
		h.reg.scroll = removeHandler(h.reg.scroll, h.id)
	case EventDispatch:
		h.reg.dispatch = removeHandler(h.reg.dispatch, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnClickPassthrough registers the host's default click handling. It runs
// for presses that no bulk gesture consumed.
func (s *Screen) OnClickPassthrough(fn func(ClickContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.click = append(s.handlers.click, handler[ClickContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClickPassthrough}
}

// OnScrollPassthrough registers the host's default wheel handling. It runs
// for ticks that resolved to ScrollPass.
func (s *Screen) OnScrollPassthrough(fn func(ScrollContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.scroll = append(s.handlers.scroll, handler[ScrollContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventScrollPassthrough}
}

// OnDispatch registers a callback fired for every action the screen performs.
func (s *Screen) OnDispatch(fn func(DispatchEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.dispatch = append(s.handlers.dispatch, handler[DispatchEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDispatch}
}

// --- Input processing ---

// Update runs one frame: advances an attached gesture runner, then feeds
// either one injected event or the live ebiten input through the pointer
// state machine. Does nothing while the screen is closed, including
// stepping the runner.
func (s *Screen) Update() {
	if !s.open {
		return
	}
	if s.runner != nil {
		s.runner.step(s)
	}
	s.processInput()
}

// processInput handles one frame of mouse input.
func (s *Screen) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	s.processPointer(float64(mx), float64(my),
		s.input.ButtonPressed(MouseButtonLeft),
		s.input.ButtonPressed(MouseButtonMiddle),
		wheel, s.input.Modifiers())
}

// processPointer runs the pointer state machine for the mouse.
func (s *Screen) processPointer(x, y float64, pressed, middle bool, wheel float64, mods KeyModifiers) {
	ps := &s.pointer

	s.focused = s.SlotAt(x, y)

	if middle && !ps.middleDown {
		s.triggerSort(mods, middle)
	}
	ps.middleDown = middle

	if wheel != 0 {
		ctx := ScrollContext{X: x, Y: y, Amount: wheel, Modifiers: mods}
		if s.HandleScroll(ctx) == ScrollPass {
			for _, h := range s.handlers.scroll {
				h.fn(ctx)
			}
		}
	}

	if pressed && !ps.down {
		// Just pressed: the modifier snapshot holds until release.
		ps.down = true
		ps.mods = mods
		ps.lastX = x
		ps.lastY = y

		ctx := ClickContext{X: x, Y: y, Button: MouseButtonLeft, Modifiers: mods}
		ps.consumed = s.HandleClick(ctx)
		if !ps.consumed {
			for _, h := range s.handlers.click {
				h.fn(ctx)
			}
		}
	} else if ps.down {
		// Held or just released: movement since the last frame is a drag
		// segment under the press-time modifiers.
		if x != ps.lastX || y != ps.lastY {
			s.HandleDrag(DragContext{
				X: ps.lastX, Y: ps.lastY,
				DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
				Button:    MouseButtonLeft,
				Modifiers: ps.mods,
			})
		}
		ps.lastX = x
		ps.lastY = y
		if !pressed {
			ps.down = false
			ps.consumed = false
		}
	} else {
		ps.lastX = x
		ps.lastY = y
	}
}
