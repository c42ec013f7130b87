package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rungun/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press event. It covers the gap before the terminal's key repeat starts.
const DefaultHoldWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	return km.mapKeyString(msg.String())
}

func (km *KeyMapper) mapKeyString(key string) core.Action {
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "a", "A", "left", "h":
		return core.ActionLeft
	case "d", "D", "right", "l":
		return core.ActionRight
	case "w", "W", " ", "up", "k":
		return core.ActionJump
	case "j", "J", "f", "x":
		return core.ActionShoot
	case "p", "P":
		return core.ActionPause
	case "r", "R":
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// HoldTracker turns key press events into held controls.
// Terminals report presses and auto-repeats but never releases, so a key
// stays held until its window lapses without another press.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press marks a held action as pressed at now. Pressing a direction
// releases the opposite one, since the terminal stops repeating it.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.IsHeld() {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Intent returns the controls held at now.
func (h *HoldTracker) Intent(now time.Time) core.Intent {
	held := make(map[core.Action]bool, len(h.until))
	for a, until := range h.until {
		if now.Before(until) {
			held[a] = true
		}
	}
	return core.IntentFromActions(held)
}

// ReleaseAll drops every held control.
func (h *HoldTracker) ReleaseAll() {
	clear(h.until)
}
