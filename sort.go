package wheelie

// SortOperation binds a sort to the screen and the slot it was triggered on.
type SortOperation struct {
	Helper Transfer
	Screen *Screen
	Slot   *Slot
}

// Sorter sorts the inventory section containing op.Slot using mode.
type Sorter interface {
	Sort(op SortOperation, mode SortMode)
}

// SorterFunc adapts a function to Sorter.
type SorterFunc func(op SortOperation, mode SortMode)

// Sort calls f(op, mode).
func (f SorterFunc) Sort(op SortOperation, mode SortMode) { f(op, mode) }

// sortMode picks the configured mode for the held modifiers.
func sortMode(mods KeyModifiers, cfg SortConfig) SortMode {
	switch {
	case mods.Shift():
		return cfg.Shift
	case mods.Ctrl():
		return cfg.Control
	default:
		return cfg.Primary
	}
}

// TriggerSort runs the sorter around the focused slot. It returns true when
// a sort was attempted.
//
// In creative mode a middle click that would copy a stack (focused slot and
// cursor not both empty or both filled) is left alone so the pick-block
// gesture keeps working.
func (s *Screen) TriggerSort() bool {
	return s.triggerSort(s.input.Modifiers(), s.input.ButtonPressed(MouseButtonMiddle))
}

// triggerSort is TriggerSort with the modifier set and middle button state
// of the frame that requested it.
func (s *Screen) triggerSort(mods KeyModifiers, middleHeld bool) bool {
	if !s.open || s.sorter == nil {
		return false
	}
	focused := s.focused
	if focused == nil {
		return false
	}
	if middleHeld && s.creativePickBlock(focused) {
		return false
	}
	mode := sortMode(mods, s.config.Sort)
	if !mode.Enabled() {
		return false
	}
	s.sorter.Sort(SortOperation{Helper: s.transfer, Screen: s, Slot: focused}, mode)
	s.emit(DispatchEvent{Action: ActionSort, SlotID: focused.ID, Modifiers: mods, SortMode: mode})
	return true
}

func (s *Screen) creativePickBlock(focused *Slot) bool {
	if s.player == nil || !s.player.Creative() {
		return false
	}
	return focused.Empty() != stackEmpty(s.player.CursorStack())
}
