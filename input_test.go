package wheelie

import "testing"

func TestCallbackHandle_Remove(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	var a, b int
	ha := rig.screen.OnDispatch(func(DispatchEvent) { a++ })
	rig.screen.OnDispatch(func(DispatchEvent) { b++ })

	x, y := slotCenter(0)
	click := ClickContext{X: x, Y: y, Button: MouseButtonLeft, Modifiers: ModCtrl}
	rig.screen.HandleClick(click)
	ha.Remove()
	ha.Remove() // second remove is a no-op
	rig.screen.HandleClick(click)

	if a != 1 || b != 2 {
		t.Errorf("a = %d, b = %d, want 1, 2", a, b)
	}
}

func TestCallbackHandle_ZeroValue(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestProcessPointer_MiddleEdgeOnly(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	x, y := slotCenter(4)

	// Held for three frames, then released.
	rig.screen.processPointer(x, y, false, true, 0, 0)
	rig.screen.processPointer(x, y, false, true, 0, 0)
	rig.screen.processPointer(x, y, false, true, 0, 0)
	rig.screen.processPointer(x, y, false, false, 0, 0)

	if len(rig.sorts) != 1 {
		t.Errorf("sorter ran %d times, want 1", len(rig.sorts))
	}
}

func TestProcessPointer_MiddleOffGridDoesNotSort(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	rig.screen.processPointer(500, 500, false, true, 0, 0)
	if len(rig.sorts) != 0 {
		t.Error("sort without a focused slot should not run")
	}
}

func TestProcessPointer_HeldWithoutMovement(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	x, y := slotCenter(2)

	rig.screen.processPointer(x, y, true, false, 0, ModShift)
	rig.screen.processPointer(x, y, true, false, 0, ModShift)
	rig.screen.processPointer(x, y, false, false, 0, ModShift)

	if len(rig.transfer.calls) != 0 {
		t.Errorf("stationary press dispatched %v", rig.transfer.ops())
	}
}

func TestProcessPointer_HoverDoesNotDrag(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	x0, y0 := slotCenter(0)
	x1, y1 := slotCenter(8)

	rig.screen.processPointer(x0, y0, false, false, 0, ModShift)
	rig.screen.processPointer(x1, y1, false, false, 0, ModShift)

	if len(rig.transfer.calls) != 0 {
		t.Errorf("hover dispatched %v", rig.transfer.ops())
	}
	if f := rig.screen.FocusedSlot(); f == nil || f.ID != 8 {
		t.Errorf("focused = %v, want slot 8", f)
	}
}

func TestProcessPointer_ConsumedPressStillDrags(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	x0, y0 := slotCenter(0)
	x1, _ := slotCenter(1)

	// ctrl-press is a bulk click; moving afterwards is a ctrl drag.
	rig.screen.processPointer(x0, y0, true, false, 0, ModCtrl)
	rig.screen.processPointer(x1, y0, true, false, 0, ModCtrl)

	want := []string{"sendAllOfAKind", "sendAllOfAKind"}
	if got := rig.transfer.ops(); !equalStrings(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if got, want := rig.transfer.slots(), []int{0, 1}; !equalInts(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestUpdate_ClosedScreenSkipsInput(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	x, y := slotCenter(0)
	rig.screen.InjectClick(x, y, ModCtrl)
	rig.screen.open = false

	rig.screen.Update()

	if rig.screen.PendingInjections() != 2 {
		t.Errorf("closed screen consumed injections")
	}
	if len(rig.transfer.calls) != 0 {
		t.Error("closed screen dispatched")
	}
}
