package wheelie

import (
	"errors"
	"fmt"
)

// Transfer moves or drops stacks on behalf of the dispatcher. Each method
// takes a single slot and performs one or more clicks; results are not
// reported back.
type Transfer interface {
	DropStackLocked(slot *Slot)
	SendStackLocked(slot *Slot)
	SendAllOfAKind(slot *Slot)
	DropAllOfAKind(slot *Slot)
	DropAllFrom(slot *Slot)
	SendAllFrom(slot *Slot)
	Scroll(slot *Slot, scrollingDown bool)
}

// Releaser is implemented by transfer helpers that hold resources until the
// screen closes.
type Releaser interface {
	Release()
}

// TransferFactory builds the transfer helper for a screen when it opens.
type TransferFactory func(s *Screen) Transfer

// Player exposes the player state the sort guard needs.
type Player interface {
	Creative() bool
	CursorStack() ItemStack
}

// EventStore receives dispatch events, typically for an ECS bridge.
type EventStore interface {
	EmitEvent(event DispatchEvent)
}

// Action identifies what the dispatcher asked a collaborator to do.
type Action uint8

const (
	ActionDropStackLocked Action = iota // drop the slot's stack, locked to its kind
	ActionSendStackLocked               // send the slot's stack, locked to its kind
	ActionSendAllOfAKind                // send every stack of the slot's kind
	ActionDropAllOfAKind                // drop every stack of the slot's kind
	ActionDropAllFrom                   // drop everything in the slot's inventory half
	ActionSendAllFrom                   // send everything in the slot's inventory half
	ActionThrow                         // plain throw click on the slot
	ActionScroll                        // wheel transfer on the slot
	ActionQuickEquip                    // three-click armor swap
	ActionSort                          // sorter invoked around the slot
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionDropStackLocked:
		return "drop_stack_locked"
	case ActionSendStackLocked:
		return "send_stack_locked"
	case ActionSendAllOfAKind:
		return "send_all_of_a_kind"
	case ActionDropAllOfAKind:
		return "drop_all_of_a_kind"
	case ActionDropAllFrom:
		return "drop_all_from"
	case ActionSendAllFrom:
		return "send_all_from"
	case ActionThrow:
		return "throw"
	case ActionScroll:
		return "scroll"
	case ActionQuickEquip:
		return "quick_equip"
	case ActionSort:
		return "sort"
	default:
		return "unknown"
	}
}

// DispatchEvent records one action the dispatcher performed.
type DispatchEvent struct {
	Action      Action
	ContainerID int
	SlotID      int
	Modifiers   KeyModifiers
	// ScrollDown is valid for ActionScroll.
	ScrollDown bool
	// SortMode is valid for ActionSort.
	SortMode SortMode
}

var (
	// ErrScreenOpen is returned by Open on a screen that is already open.
	ErrScreenOpen = errors.New("wheelie: screen already open")
	// ErrNoTransfer is returned by Open when no transfer factory was configured.
	ErrNoTransfer = errors.New("wheelie: no transfer factory")
	// ErrNoQueue is returned by Open when no click queue was configured.
	ErrNoQueue = errors.New("wheelie: no click queue")
)

// ScreenOptions configures a Screen.
type ScreenOptions struct {
	// Container holds the screen's slots. Required.
	Container *Container
	// Locator resolves pointer positions to slots. Defaults to Container.
	Locator SlotLocator
	// Config holds the feature toggles. The zero value disables every feature;
	// use DefaultConfig for the usual defaults.
	Config Config
	// Input reads modifier and button state. Defaults to EbitenInput.
	Input ModifierReader
	// Queue receives click commands. Shared with other screens. Required.
	Queue *ClickQueue
	// NewTransfer builds the transfer helper on Open.
	NewTransfer TransferFactory
	// Sorter runs sorts. Nil disables the sort trigger.
	Sorter Sorter
	// Player provides creative mode and cursor state. Nil means survival
	// with an empty cursor.
	Player Player
	// PlayerInventory marks the player's own inventory screen, which enables
	// the armor quick-equip gesture.
	PlayerInventory bool
}

// Screen dispatches pointer gestures on one open slot screen. A Screen is
// single-threaded: all methods must be called from the input thread.
type Screen struct {
	container       *Container
	locator         SlotLocator
	config          Config
	input           ModifierReader
	queue           *ClickQueue
	newTransfer     TransferFactory
	transfer        Transfer
	sorter          Sorter
	player          Player
	playerInventory bool
	store           EventStore
	debug           bool
	open            bool

	// Input state
	handlers    handlerRegistry
	focused     *Slot
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	runner      *GestureRunner
}

// NewScreen creates a closed screen. Call Open before dispatching input.
func NewScreen(opts ScreenOptions) *Screen {
	s := &Screen{
		container:       opts.Container,
		locator:         opts.Locator,
		config:          opts.Config,
		input:           opts.Input,
		queue:           opts.Queue,
		newTransfer:     opts.NewTransfer,
		sorter:          opts.Sorter,
		player:          opts.Player,
		playerInventory: opts.PlayerInventory,
	}
	if s.locator == nil && s.container != nil {
		s.locator = s.container
	}
	if s.input == nil {
		s.input = EbitenInput{}
	}
	return s
}

// Open builds the transfer helper and starts accepting input.
func (s *Screen) Open() error {
	if s.open {
		return ErrScreenOpen
	}
	if s.newTransfer == nil {
		return ErrNoTransfer
	}
	if s.queue == nil {
		return ErrNoQueue
	}
	s.transfer = s.newTransfer(s)
	if s.transfer == nil {
		return fmt.Errorf("wheelie: transfer factory returned nil: %w", ErrNoTransfer)
	}
	s.open = true
	s.pointer = pointerState{}
	return nil
}

// Close releases the transfer helper and stops accepting input. Events
// already handed to the queue are left to the queue's owner.
func (s *Screen) Close() {
	if !s.open {
		return
	}
	if r, ok := s.transfer.(Releaser); ok {
		r.Release()
	}
	s.transfer = nil
	s.focused = nil
	s.pointer = pointerState{}
	s.injectQueue = s.injectQueue[:0]
	s.open = false
}

// IsOpen reports whether the screen accepts input.
func (s *Screen) IsOpen() bool {
	return s.open
}

// Container returns the screen's slot container.
func (s *Screen) Container() *Container {
	return s.container
}

// Transfer returns the transfer helper, or nil while the screen is closed.
func (s *Screen) Transfer() Transfer {
	return s.transfer
}

// Config returns the screen's feature toggles.
func (s *Screen) Config() Config {
	return s.config
}

// SetConfig replaces the feature toggles. Takes effect on the next gesture.
func (s *Screen) SetConfig(cfg Config) {
	s.config = cfg
}

// SetEntityStore sets the optional store that receives dispatch events.
func (s *Screen) SetEntityStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables or disables dispatch logging to stderr.
func (s *Screen) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// FocusedSlot returns the slot under the pointer as of the last Update.
func (s *Screen) FocusedSlot() *Slot {
	return s.focused
}

// SetFocusedSlot overrides the focused slot. Useful for hosts that track
// hover themselves.
func (s *Screen) SetFocusedSlot(slot *Slot) {
	s.focused = slot
}

// SlotAt resolves (x, y) to a slot through the screen's locator.
func (s *Screen) SlotAt(x, y float64) *Slot {
	if s.locator == nil {
		return nil
	}
	return s.locator.SlotAt(x, y)
}

// containerID returns the sync id used in click events.
func (s *Screen) containerID() int {
	if s.container == nil {
		return 0
	}
	return s.container.ID
}

// invoke runs one transfer action on slot and records it.
func (s *Screen) invoke(action Action, slot *Slot, mods KeyModifiers) {
	switch action {
	case ActionDropStackLocked:
		s.transfer.DropStackLocked(slot)
	case ActionSendStackLocked:
		s.transfer.SendStackLocked(slot)
	case ActionSendAllOfAKind:
		s.transfer.SendAllOfAKind(slot)
	case ActionDropAllOfAKind:
		s.transfer.DropAllOfAKind(slot)
	case ActionDropAllFrom:
		s.transfer.DropAllFrom(slot)
	case ActionSendAllFrom:
		s.transfer.SendAllFrom(slot)
	default:
		debugWarn("invoke: %s is not a transfer action", action)
		return
	}
	s.emit(DispatchEvent{Action: action, SlotID: slot.ID, Modifiers: mods})
}

// pushClick hands a click command to the queue and logs it.
func (s *Screen) pushClick(ev ClickEvent) {
	s.queue.Enqueue(ev, nil)
	s.debugLog("queued %s", ev)
}

// emit forwards ev to the store and the debug log.
func (s *Screen) emit(ev DispatchEvent) {
	ev.ContainerID = s.containerID()
	s.debugLog("%s slot=%d mods=%s", ev.Action, ev.SlotID, ev.Modifiers)
	for _, h := range s.handlers.dispatch {
		h.fn(ev)
	}
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}
