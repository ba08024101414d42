package wheelie

import "testing"

func playerInventory(opts *ScreenOptions) {
	opts.PlayerInventory = true
}

func TestHandleScroll_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scrolling.Enabled = false
	rig := newTestRig(t, cfg, playerInventory)
	rig.fill(0, Stack{Item: "iron_helmet", Count: 1, Equipment: EquipmentHead})
	x, y := slotCenter(0)

	for _, mods := range []KeyModifiers{0, ModAlt, ModShift | ModCtrl} {
		for _, amount := range []float64{-1, 1} {
			if got := rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: amount, Modifiers: mods}); got != ScrollPass {
				t.Errorf("HandleScroll(mods=%v, amount=%v) = %v, want pass", mods, amount, got)
			}
		}
	}
	if len(rig.transfer.calls) != 0 || rig.queue.Len() != 0 {
		t.Error("disabled scrolling should not dispatch")
	}
}

func TestHandleScroll_AltFails(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	rig.fill(0, Stack{Item: "stone", Count: 3})
	x, y := slotCenter(0)

	for _, mods := range []KeyModifiers{ModAlt, ModAlt | ModShift, ModAlt | ModCtrl} {
		if got := rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: 1, Modifiers: mods}); got != ScrollFailure {
			t.Errorf("HandleScroll(mods=%v) = %v, want failure", mods, got)
		}
	}
	if len(rig.transfer.calls) != 0 {
		t.Error("alt scroll should not transfer")
	}
}

func TestHandleScroll_NothingToActOn(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), nil)
	x, y := slotCenter(0)

	if got := rig.screen.HandleScroll(ScrollContext{X: 500, Y: 500, Amount: 1}); got != ScrollPass {
		t.Errorf("off-grid scroll = %v, want pass", got)
	}
	if got := rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: 1}); got != ScrollPass {
		t.Errorf("scroll over empty slot = %v, want pass", got)
	}
	rig.fill(0, Stack{Item: "stone", Count: 0})
	if got := rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: 1}); got != ScrollPass {
		t.Errorf("scroll over zero-count stack = %v, want pass", got)
	}
}

func TestHandleScroll_DelegatesToTransfer(t *testing.T) {
	tests := []struct {
		name     string
		player   bool
		stack    Stack
		amount   float64
		wantDown bool
	}{
		{"scroll up", false, Stack{Item: "stone", Count: 3}, 1, false},
		{"scroll down", false, Stack{Item: "stone", Count: 3}, -1, true},
		{"armor outside player inventory", false, Stack{Item: "iron_helmet", Count: 1, Equipment: EquipmentHead}, -1, true},
		{"armor scrolled up", true, Stack{Item: "iron_helmet", Count: 1, Equipment: EquipmentHead}, 1, false},
		{"shield is not armor", true, Stack{Item: "shield", Count: 1, Equipment: EquipmentOffHand}, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := newTestRig(t, DefaultConfig(), func(o *ScreenOptions) { o.PlayerInventory = tt.player })
			rig.fill(20, tt.stack)
			x, y := slotCenter(20)

			if got := rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: tt.amount}); got != ScrollSuccess {
				t.Fatalf("HandleScroll = %v, want success", got)
			}
			want := []transferCall{{op: "scroll", slot: 20, down: tt.wantDown}}
			if len(rig.transfer.calls) != 1 || rig.transfer.calls[0] != want[0] {
				t.Errorf("calls = %+v, want %+v", rig.transfer.calls, want)
			}
			if rig.queue.Len() != 0 {
				t.Errorf("queued %d clicks, want 0", rig.queue.Len())
			}
		})
	}
}

func TestHandleScroll_QuickEquipHelmet(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), playerInventory)
	rig.fill(22, Stack{Item: "diamond_helmet", Count: 1, Equipment: EquipmentHead})
	x, y := slotCenter(22)

	if got := rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: -1}); got != ScrollSuccess {
		t.Fatalf("HandleScroll = %v, want success", got)
	}
	if len(rig.transfer.calls) != 0 {
		t.Errorf("quick-equip should not use the transfer helper, got %v", rig.transfer.ops())
	}

	want := []ClickEvent{
		{ContainerID: testContainerID, SlotID: 22, Button: 0, Action: SlotActionPickup},
		{ContainerID: testContainerID, SlotID: 8 - 3, Button: 0, Action: SlotActionPickup},
		{ContainerID: testContainerID, SlotID: 22, Button: 0, Action: SlotActionPickup},
	}
	pending := rig.queue.Pending()
	if len(pending) != len(want) {
		t.Fatalf("queued %d clicks, want %d", len(pending), len(want))
	}
	for i := range want {
		if pending[i] != want[i] {
			t.Errorf("click %d = %v, want %v", i, pending[i], want[i])
		}
	}

	// One click per tick, in order.
	for i := range want {
		rig.queue.Tick()
		if len(rig.replayed) != i+1 {
			t.Fatalf("after tick %d replayed %d clicks", i+1, len(rig.replayed))
		}
	}
}

func TestHandleScroll_QuickEquipSlotIDs(t *testing.T) {
	tests := []struct {
		equip EquipmentSlot
		want  int
	}{
		{EquipmentHead, 5},
		{EquipmentChest, 6},
		{EquipmentLegs, 7},
		{EquipmentFeet, 8},
	}
	for _, tt := range tests {
		t.Run(tt.equip.String(), func(t *testing.T) {
			rig := newTestRig(t, DefaultConfig(), playerInventory)
			rig.fill(15, Stack{Item: "armor", Count: 1, Equipment: tt.equip})
			x, y := slotCenter(15)

			rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: -0.5})

			pending := rig.queue.Pending()
			if len(pending) != 3 {
				t.Fatalf("queued %d clicks, want 3", len(pending))
			}
			if pending[1].SlotID != tt.want {
				t.Errorf("armor slot id = %d, want %d", pending[1].SlotID, tt.want)
			}
			for i, ev := range pending {
				if ev.Action != SlotActionPickup {
					t.Errorf("click %d action = %v, want pickup", i, ev.Action)
				}
			}
		})
	}
}

func TestHandleScroll_QuickEquipDispatchEvent(t *testing.T) {
	rig := newTestRig(t, DefaultConfig(), playerInventory)
	rig.fill(9, Stack{Item: "iron_boots", Count: 1, Equipment: EquipmentFeet})
	var got []DispatchEvent
	rig.screen.OnDispatch(func(ev DispatchEvent) { got = append(got, ev) })

	x, y := slotCenter(9)
	rig.screen.HandleScroll(ScrollContext{X: x, Y: y, Amount: -1, Modifiers: ModShift})

	if len(got) != 1 || got[0].Action != ActionQuickEquip || got[0].SlotID != 9 {
		t.Errorf("dispatch events = %+v", got)
	}
}

func TestArmorSlotID(t *testing.T) {
	if got := ArmorSlotID(EquipmentHead); got != 5 {
		t.Errorf("ArmorSlotID(head) = %d, want 5", got)
	}
	if got := ArmorSlotID(EquipmentFeet); got != 8 {
		t.Errorf("ArmorSlotID(feet) = %d, want 8", got)
	}
}
