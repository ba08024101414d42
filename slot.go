package wheelie

// Slot is an addressable item-holding position within a container.
// Slots are owned by their container; the dispatcher only reads them.
type Slot struct {
	ID     int       // unique within the container
	Stack  ItemStack // nil or empty when the slot holds nothing
	Bounds Rect      // screen-space hit area

	container *Container
}

// Container returns the container the slot belongs to, or nil if the slot
// was never added to one.
func (s *Slot) Container() *Container {
	return s.container
}

// Empty reports whether the slot holds no items.
func (s *Slot) Empty() bool {
	return stackEmpty(s.Stack)
}

// Container is the slot handler of an open screen. ID is the sync id the
// server uses to address the handler in click events.
type Container struct {
	ID    int
	slots []*Slot
}

// NewContainer creates an empty container with the given sync id.
func NewContainer(id int) *Container {
	return &Container{ID: id}
}

// AddSlot appends slot to the container and sets its back-reference.
// Slots added later are considered on top of earlier ones for hit testing.
func (c *Container) AddSlot(slot *Slot) *Slot {
	slot.container = c
	c.slots = append(c.slots, slot)
	return slot
}

// AddGrid adds a rows x cols grid of empty slots starting at (x, y). Slot ids
// continue from firstID in row-major order. Each slot is size x size with
// spacing between slot origins.
func (c *Container) AddGrid(firstID, rows, cols int, x, y, size, spacing float64) []*Slot {
	out := make([]*Slot, 0, rows*cols)
	id := firstID
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			out = append(out, c.AddSlot(&Slot{
				ID: id,
				Bounds: Rect{
					X:      x + float64(col)*spacing,
					Y:      y + float64(r)*spacing,
					Width:  size,
					Height: size,
				},
			}))
			id++
		}
	}
	return out
}

// Slots returns the container's slots in insertion order. The slice must not
// be modified.
func (c *Container) Slots() []*Slot {
	return c.slots
}

// Slot returns the slot with the given id, or nil.
func (c *Container) Slot(id int) *Slot {
	for _, s := range c.slots {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SlotLocator resolves a screen point to the slot under it.
type SlotLocator interface {
	SlotAt(x, y float64) *Slot
}

// SlotAt finds the topmost slot at (x, y). Returns nil if nothing is hit.
func (c *Container) SlotAt(x, y float64) *Slot {
	// Iterate backward: last added slot is on top.
	for i := len(c.slots) - 1; i >= 0; i-- {
		if c.slots[i].Bounds.Contains(x, y) {
			return c.slots[i]
		}
	}
	return nil
}
