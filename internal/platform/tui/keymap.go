package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorbang/internal/core"
)

// DefaultHoldTicks is how long a steering key stays pressed after its last
// key event. Terminals report key presses and autorepeats but never
// releases, so steering is latched for a few ticks to bridge the autorepeat
// gap.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// Steering actions are latched for a few ticks; everything else fires once
// on the next frame. Charge is a toggle.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int
	pending   core.InputFrame
	charging  bool
}

// NewKeyMapper creates a key mapper that latches steering for holdTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionRotateLeft, false
	case "d", "right":
		return core.ActionRotateRight, false
	case "w", "up":
		return core.ActionThrust, false
	case "s", "down":
		return core.ActionReverse, false
	case " ", "f":
		return core.ActionFire, false
	case "c":
		return core.ActionCharge, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// HandleKey records a key press. Returns true if it was a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}

	switch action {
	case core.ActionNone:
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust, core.ActionReverse:
		km.held[action] = km.holdTicks
		// Opposite directions cancel each other.
		delete(km.held, opposite(action))
	case core.ActionCharge:
		km.charging = !km.charging
	default:
		km.pending.Set(action)
	}
	return false
}

// Aim queues an aimed shot at a field position for the next frame.
func (km *KeyMapper) Aim(p core.Vec2) {
	km.pending.Set(core.ActionFire)
	km.pending.SetAim(p)
}

// Charging reports whether the charge toggle is on.
func (km *KeyMapper) Charging() bool {
	return km.charging
}

// Frame builds the input for the next tick and ages the latches.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := km.pending.Clone()
	km.pending.Clear()

	for action, ticks := range km.held {
		frame.Set(action)
		if ticks <= 1 {
			delete(km.held, action)
		} else {
			km.held[action] = ticks - 1
		}
	}
	if km.charging {
		frame.Set(core.ActionCharge)
	}
	// A restart drops the charge toggle so the new run starts idle.
	if frame.Has(core.ActionRestart) {
		km.charging = false
	}
	return frame
}

// Reset drops every latch and pending action.
func (km *KeyMapper) Reset() {
	clear(km.held)
	km.pending.Clear()
	km.charging = false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionRotateLeft:
		return core.ActionRotateRight
	case core.ActionRotateRight:
		return core.ActionRotateLeft
	case core.ActionThrust:
		return core.ActionReverse
	case core.ActionReverse:
		return core.ActionThrust
	}
	return core.ActionNone
}
