package wheelie

// throwClickButton is the click data the alt-click throw sends, the same
// value the vanilla throw key uses when it drops the whole stack.
const throwClickButton = 1

// DragContext describes one drag movement while a button is held.
// The segment starts at (X, Y) and ends at (X+DeltaX, Y+DeltaY), the
// pointer's current position.
type DragContext struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Button         MouseButton
	Modifiers      KeyModifiers // snapshot taken when the button went down
}

// ClickContext describes a button press at (X, Y).
type ClickContext struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// dragAction picks the per-slot bulk action for a drag. Alt wins over
// Shift, Shift wins over Control.
func dragAction(mods KeyModifiers, cfg Config) (Action, bool) {
	switch {
	case cfg.General.AltDropping && mods.Alt():
		return ActionDropStackLocked, true
	case mods.Shift():
		return ActionSendStackLocked, true
	case mods.Ctrl():
		return ActionSendAllOfAKind, true
	}
	return 0, false
}

// HandleDrag applies the bulk drag action to the hovered slot and, when
// better fast dragging is enabled, to every slot sampled along the segment.
// Nothing happens when no slot is under the pointer.
func (s *Screen) HandleDrag(ctx DragContext) {
	if !s.open || !ctx.Button.IsPrimary() {
		return
	}
	hovered := s.SlotAt(ctx.X+ctx.DeltaX, ctx.Y+ctx.DeltaY)
	if hovered == nil {
		return
	}
	action, ok := dragAction(ctx.Modifiers, s.config)
	if !ok {
		return
	}
	s.invoke(action, hovered, ctx.Modifiers)

	if !s.config.General.BetterFastDragging {
		return
	}
	for _, slot := range SampleDrag(s.locator, ctx.X, ctx.Y, ctx.DeltaX, ctx.DeltaY) {
		s.invoke(action, slot, ctx.Modifiers)
	}
}

// HandleClick routes a button press. It returns true when the press was
// consumed and the host's default click handling must not run.
//
// Alt (with alt dropping enabled) and Control are exclusive top-level modes;
// Alt is checked first.
func (s *Screen) HandleClick(ctx ClickContext) bool {
	if !s.open || !ctx.Button.IsPrimary() {
		return false
	}
	mods := ctx.Modifiers
	hovered := s.SlotAt(ctx.X, ctx.Y)
	if hovered == nil {
		return false
	}

	switch {
	case s.config.General.AltDropping && mods.Alt():
		switch {
		case mods.Ctrl() && mods.Shift():
			s.invoke(ActionDropAllFrom, hovered, mods)
		case mods.Ctrl():
			s.invoke(ActionDropAllOfAKind, hovered, mods)
		default:
			s.pushClick(ClickEvent{
				ContainerID: s.containerID(),
				SlotID:      hovered.ID,
				Button:      throwClickButton,
				Action:      SlotActionThrow,
			})
			s.emit(DispatchEvent{Action: ActionThrow, SlotID: hovered.ID, Modifiers: mods})
		}
		return true
	case mods.Ctrl():
		if mods.Shift() {
			s.invoke(ActionSendAllFrom, hovered, mods)
		} else {
			s.invoke(ActionSendAllOfAKind, hovered, mods)
		}
		return true
	}
	return false
}
