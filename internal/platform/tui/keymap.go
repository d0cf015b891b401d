package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NUDC/wego-game/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Digits feed both the typed-rune channel (span entry) and, for 1-4,
// the choice actions. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	case "w", "up":
		frame.Set(core.ActionUp)
	case "s", "down":
		frame.Set(core.ActionDown)
	case "a", "left":
		frame.Set(core.ActionLeft)
	case "d", "right":
		frame.Set(core.ActionRight)
	case "enter", " ":
		frame.Set(core.ActionConfirm)
	case "backspace":
		frame.Set(core.ActionErase)
	case "b", "esc":
		frame.Set(core.ActionBack)
	case "p":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		frame.Type(rune(key[0]))
		switch key {
		case "1":
			frame.Set(core.ActionChoice1)
		case "2":
			frame.Set(core.ActionChoice2)
		case "3":
			frame.Set(core.ActionChoice3)
		case "4":
			frame.Set(core.ActionChoice4)
		}
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionHistory
	MenuActionProfile
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	case "v":
		return MenuActionProfile
	}

	return MenuActionNone
}
