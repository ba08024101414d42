package wheelie

// armorSlotBase is the container slot id that armor entity slot 0 (feet) is
// subtracted from: head sits at 5, chest 6, legs 7, feet 8.
const armorSlotBase = 8

// ArmorSlotID returns the player inventory slot id for an armor equipment
// slot.
func ArmorSlotID(e EquipmentSlot) int {
	return armorSlotBase - e.EntitySlotID()
}

// ScrollContext describes one wheel tick at (X, Y). Negative Amount scrolls
// down.
type ScrollContext struct {
	X, Y      float64
	Amount    float64
	Modifiers KeyModifiers
}

// HandleScroll resolves a wheel tick. Pass leaves the event to other
// handlers; Success and Failure end it.
//
// Scrolling down over an armor piece in the player's own inventory swaps it
// with the matching armor slot through three pickup clicks. Every other
// handled tick is delegated to the transfer helper.
func (s *Screen) HandleScroll(ctx ScrollContext) ScrollAction {
	if !s.open || !s.config.Scrolling.Enabled {
		return ScrollPass
	}
	if ctx.Modifiers.Alt() {
		return ScrollFailure
	}
	hovered := s.SlotAt(ctx.X, ctx.Y)
	if hovered == nil || hovered.Empty() {
		return ScrollPass
	}

	down := ctx.Amount < 0
	if down && s.playerInventory {
		if equip := hovered.Stack.EquipmentSlot(); equip.Type() == EquipmentArmor {
			s.quickEquip(hovered, equip, ctx.Modifiers)
			return ScrollSuccess
		}
	}

	s.transfer.Scroll(hovered, down)
	s.emit(DispatchEvent{Action: ActionScroll, SlotID: hovered.ID, Modifiers: ctx.Modifiers, ScrollDown: down})
	return ScrollSuccess
}

// quickEquip queues the pickup, pickup, pickup sequence that swaps the
// hovered stack with the armor slot through the cursor.
func (s *Screen) quickEquip(hovered *Slot, equip EquipmentSlot, mods KeyModifiers) {
	id := s.containerID()
	for _, slotID := range [3]int{hovered.ID, ArmorSlotID(equip), hovered.ID} {
		s.pushClick(ClickEvent{
			ContainerID: id,
			SlotID:      slotID,
			Button:      0,
			Action:      SlotActionPickup,
		})
	}
	s.emit(DispatchEvent{Action: ActionQuickEquip, SlotID: hovered.ID, Modifiers: mods, ScrollDown: true})
}
