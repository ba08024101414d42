package wheelie

import "math"

// dragSampleStep is the screen distance between drag samples, one slot width.
const dragSampleStep = 16.0

// SampleDrag resolves the slots along a drag segment that starts at (x, y)
// and moves by (dx, dy). Segments no longer than one sample step yield nil.
// Otherwise floor(d/16) points are taken at 16-unit steps, walking from the
// segment's end back toward its start; points over no slot are skipped.
//
// Slots are not deduplicated: a path crossing the same slot twice lists it
// twice.
func SampleDrag(loc SlotLocator, x, y, dx, dy float64) []*Slot {
	if loc == nil {
		return nil
	}
	var slots []*Slot
	for _, p := range DragSamplePoints(x, y, dx, dy) {
		if slot := loc.SlotAt(p.X, p.Y); slot != nil {
			slots = append(slots, slot)
		}
	}
	return slots
}

// DragSamplePoints returns the sample positions SampleDrag would probe, in
// the same order. Useful for hosts that want to visualize a fast drag.
func DragSamplePoints(x, y, dx, dy float64) []Vec2 {
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist <= dragSampleStep {
		return nil
	}
	n := int(math.Floor(dist / dragSampleStep))
	pts := make([]Vec2, n)
	for i := range pts {
		fi := float64(i)
		pts[i] = Vec2{
			X: x + dx - dx/dist*dragSampleStep*fi,
			Y: y + dy - dy/dist*dragSampleStep*fi,
		}
	}
	return pts
}
