package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"chase8/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w moves up", runeKey('w'), core.ActionUp},
		{"arrow up moves up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s moves down", runeKey('s'), core.ActionDown},
		{"a moves left", runeKey('a'), core.ActionLeft},
		{"d moves right", runeKey('d'), core.ActionRight},
		{"arrow right moves right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"m mutes", runeKey('m'), core.ActionMute},
		{"bracket cycles palette", runeKey(']'), core.ActionPaletteNext},
		{"reverse bracket cycles palette", runeKey('['), core.ActionPalettePrev},
		{"plus speeds up", runeKey('+'), core.ActionSpeedUp},
		{"minus slows down", runeKey('-'), core.ActionSpeedDown},
		{"zero resets speed", runeKey('0'), core.ActionSpeedReset},
		{"question mark toggles help", runeKey('?'), core.ActionHelp},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key maps to none", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpViewsCoverAllBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Fatal("ShortHelp returned no bindings")
	}

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total < 13 {
		t.Errorf("FullHelp covers %d bindings, want at least 13", total)
	}
}
