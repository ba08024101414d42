package wheelie

// Vec2 is a 2D screen-space point or offset.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// IsPrimary reports whether b is the button bulk gestures listen to.
func (b MouseButton) IsPrimary() bool {
	return b == MouseButtonLeft
}

// String returns a string representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
//
// A KeyModifiers value is a snapshot: it is read once when a gesture starts
// and passed along unchanged, so every slot touched by one gesture sees the
// same modifier state.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Shift reports whether Shift is held in the snapshot.
func (m KeyModifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether Control is held in the snapshot.
func (m KeyModifiers) Ctrl() bool { return m&ModCtrl != 0 }

// Alt reports whether Alt is held in the snapshot.
func (m KeyModifiers) Alt() bool { return m&ModAlt != 0 }

// String returns the held modifiers joined with "+", or "none".
func (m KeyModifiers) String() string {
	if m == 0 {
		return "none"
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += "+"
		}
		s += name
	}
	if m.Ctrl() {
		add("ctrl")
	}
	if m.Shift() {
		add("shift")
	}
	if m.Alt() {
		add("alt")
	}
	if m&ModMeta != 0 {
		add("meta")
	}
	return s
}

// ScrollAction is the result of resolving a wheel tick.
type ScrollAction uint8

const (
	ScrollPass    ScrollAction = iota // not handled; later handlers may see the event
	ScrollSuccess                     // handled
	ScrollFailure                     // handled but declined
)

// Terminal reports whether no further handler may run for the event.
func (a ScrollAction) Terminal() bool {
	return a != ScrollPass
}

// String returns a string representation of the scroll action.
func (a ScrollAction) String() string {
	switch a {
	case ScrollSuccess:
		return "success"
	case ScrollFailure:
		return "failure"
	default:
		return "pass"
	}
}

// SlotActionType tags a click event with the interaction the server should
// perform on the slot.
type SlotActionType uint8

const (
	SlotActionPickup     SlotActionType = iota // pick up or put down the cursor stack
	SlotActionQuickMove                        // shift-click transfer to the other inventory half
	SlotActionSwap                             // swap with a hotbar slot
	SlotActionClone                            // creative middle-click copy
	SlotActionThrow                            // throw from the slot
	SlotActionQuickCraft                       // vanilla drag distribution
	SlotActionPickupAll                        // double-click collect
)

// String returns a string representation of the slot action type.
func (t SlotActionType) String() string {
	switch t {
	case SlotActionPickup:
		return "pickup"
	case SlotActionQuickMove:
		return "quick_move"
	case SlotActionSwap:
		return "swap"
	case SlotActionClone:
		return "clone"
	case SlotActionThrow:
		return "throw"
	case SlotActionQuickCraft:
		return "quick_craft"
	case SlotActionPickupAll:
		return "pickup_all"
	default:
		return "unknown"
	}
}

// EquipmentType groups equipment slots.
type EquipmentType uint8

const (
	EquipmentHand  EquipmentType = iota // main hand and off hand
	EquipmentArmor                      // the four armor pieces
)

// EquipmentSlot is where an item prefers to be worn or held.
type EquipmentSlot uint8

const (
	EquipmentMainHand EquipmentSlot = iota
	EquipmentOffHand
	EquipmentFeet
	EquipmentLegs
	EquipmentChest
	EquipmentHead
)

// Type returns whether the slot is a hand or an armor slot.
func (e EquipmentSlot) Type() EquipmentType {
	if e >= EquipmentFeet && e <= EquipmentHead {
		return EquipmentArmor
	}
	return EquipmentHand
}

// EntitySlotID returns the index of the slot within its type group:
// 0-1 for hands, 0 (feet) through 3 (head) for armor.
func (e EquipmentSlot) EntitySlotID() int {
	switch e {
	case EquipmentOffHand:
		return 1
	case EquipmentFeet:
		return 0
	case EquipmentLegs:
		return 1
	case EquipmentChest:
		return 2
	case EquipmentHead:
		return 3
	default:
		return 0
	}
}

// String returns a string representation of the equipment slot.
func (e EquipmentSlot) String() string {
	switch e {
	case EquipmentMainHand:
		return "mainhand"
	case EquipmentOffHand:
		return "offhand"
	case EquipmentFeet:
		return "feet"
	case EquipmentLegs:
		return "legs"
	case EquipmentChest:
		return "chest"
	case EquipmentHead:
		return "head"
	default:
		return "unknown"
	}
}

// ItemStack is the read-only view of a stack held by a slot or the cursor.
// A nil ItemStack is treated as empty.
type ItemStack interface {
	Empty() bool
	EquipmentSlot() EquipmentSlot
}

// Stack is a plain ItemStack.
type Stack struct {
	Item      string
	Count     int
	Equipment EquipmentSlot
}

// Empty reports whether the stack holds no items.
func (s Stack) Empty() bool {
	return s.Item == "" || s.Count <= 0
}

// EquipmentSlot returns the stack's preferred equipment slot.
func (s Stack) EquipmentSlot() EquipmentSlot {
	return s.Equipment
}

// stackEmpty reports whether st is nil or empty.
func stackEmpty(st ItemStack) bool {
	return st == nil || st.Empty()
}

// SortMode selects the strategy used by the external sorter. The zero value
// disables sorting for the trigger it is configured on.
type SortMode string

const (
	SortNone     SortMode = ""
	SortAlphabet SortMode = "alphabet"
	SortQuantity SortMode = "quantity"
	SortRawID    SortMode = "raw_id"
)

// Enabled reports whether m selects a strategy.
func (m SortMode) Enabled() bool {
	return m != SortNone
}
