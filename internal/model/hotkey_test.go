package model_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/gridconf/internal/input"
	"github.com/ja-he/gridconf/internal/model"
)

func combination(t *testing.T, spec input.Keyspec) input.Combination {
	t.Helper()
	c, err := input.ParseCombination(spec)
	require.NoError(t, err)
	return c
}

func TestHotkeyTable(t *testing.T) {

	t.Run("add keeps order and assigns IDs", func(t *testing.T) {
		table := model.NewHotkeyTable()
		assert.Equal(t, 0, table.AddHotkey(model.Hotkey{Combination: combination(t, "Control+1")}))
		assert.Equal(t, 1, table.AddHotkey(model.NewHotkey(combination(t, "Control+2"))))

		hotkeys := table.Hotkeys()
		require.Len(t, hotkeys, 2)
		assert.Equal(t, "Control+1", hotkeys[0].Combination.String())
		assert.Equal(t, "Control+2", hotkeys[1].Combination.String())
		assert.NotEqual(t, hotkeys[0].ID, hotkeys[1].ID)
		assert.Equal(t, 1, table.IndexOf(hotkeys[1].ID))
	})

	t.Run("duplicate combinations are accepted", func(t *testing.T) {
		table := model.NewHotkeyTable()
		table.AddHotkey(model.NewHotkey(combination(t, "Control+1")))
		table.AddHotkey(model.NewHotkey(combination(t, "Control+1")))
		assert.Equal(t, 2, table.Len())
	})

	t.Run("index errors", func(t *testing.T) {
		table := model.NewHotkeyTable()
		table.AddHotkey(model.NewHotkey(combination(t, "a"), model.NewSwitchToScreen("x")))

		_, err := table.RemoveHotkeyAt(1)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
		_, err = table.RemoveHotkeyAt(-1)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
		assert.ErrorIs(t, table.AddActionTo(1, model.NewSwitchToScreen("y")), model.ErrIndexOutOfRange)
		_, err = table.RemoveActionAt(1, 0)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
		_, err = table.RemoveActionAt(0, 1)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
		assert.ErrorIs(t, table.ReplaceActionAt(0, 3, model.NewSwitchToScreen("y")), model.ErrIndexOutOfRange)
		assert.ErrorIs(t, table.SetCombination(2, combination(t, "b")), model.ErrIndexOutOfRange)
		_, err = table.Hotkey(5)
		assert.ErrorIs(t, err, model.ErrIndexOutOfRange)

		h, err := table.Hotkey(0)
		require.NoError(t, err)
		assert.Len(t, h.Actions, 1)
	})

	t.Run("actions keep order", func(t *testing.T) {
		table := model.NewHotkeyTable()
		i := table.AddHotkey(model.NewHotkey(combination(t, "a")))
		require.NoError(t, table.AddActionTo(i, model.NewSwitchToScreen("one")))
		require.NoError(t, table.AddActionTo(i, model.NewSwitchToScreen("two")))
		require.NoError(t, table.AddActionTo(i, model.NewSwitchToScreen("three")))

		next, err := table.RemoveActionAt(i, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, next)

		h, _ := table.Hotkey(i)
		require.Len(t, h.Actions, 2)
		assert.Equal(t, "one", h.Actions[0].Target)
		assert.Equal(t, "three", h.Actions[1].Target)

		require.NoError(t, table.ReplaceActionAt(i, 0, model.NewLockCursorToScreen(model.LockOn)))
		h, _ = table.Hotkey(i)
		assert.Equal(t, model.ActionLockCursorToScreen, h.Actions[0].Kind)
	})

	t.Run("removal shifts indices", func(t *testing.T) {
		table := model.NewHotkeyTable()
		table.AddHotkey(model.NewHotkey(combination(t, "a"), model.NewSwitchToScreen("from-a")))
		table.AddHotkey(model.NewHotkey(combination(t, "b"), model.NewSwitchToScreen("from-b"), model.NewSwitchToScreen("also-b")))
		originalSecond, _ := table.Hotkey(1)

		next, err := table.RemoveHotkeyAt(0)
		require.NoError(t, err)
		assert.Equal(t, 0, next)

		_, err = table.RemoveActionAt(0, 0)
		require.NoError(t, err)

		remaining := table.Hotkeys()
		require.Len(t, remaining, 1)
		assert.Equal(t, originalSecond.ID, remaining[0].ID)
		assert.Equal(t, "b", remaining[0].Combination.String())
		require.Len(t, remaining[0].Actions, 1)
		assert.Equal(t, "also-b", remaining[0].Actions[0].Target)
	})

	t.Run("next selection after removal", func(t *testing.T) {
		table := model.NewHotkeyTable()
		for _, spec := range []input.Keyspec{"a", "b", "c"} {
			table.AddHotkey(model.NewHotkey(combination(t, spec)))
		}

		next, err := table.RemoveHotkeyAt(2)
		require.NoError(t, err)
		assert.Equal(t, 1, next, "removing the last selects the new last")

		next, err = table.RemoveHotkeyAt(0)
		require.NoError(t, err)
		assert.Equal(t, 0, next)

		next, err = table.RemoveHotkeyAt(0)
		require.NoError(t, err)
		assert.Equal(t, -1, next, "empty table selects nothing")
	})

	t.Run("stale index is re-resolved", func(t *testing.T) {
		table := model.NewHotkeyTable()
		table.AddHotkey(model.NewHotkey(combination(t, "a")))
		table.AddHotkey(model.NewHotkey(combination(t, "b")))

		selected := 1
		_, err := table.RemoveHotkeyAt(0)
		require.NoError(t, err)

		selected = table.ClampIndex(selected)
		h, err := table.Hotkey(selected)
		require.NoError(t, err)
		assert.Equal(t, "b", h.Combination.String())

		_, err = table.RemoveHotkeyAt(0)
		require.NoError(t, err)
		assert.Equal(t, -1, table.ClampIndex(selected))
		assert.Equal(t, -1, table.IndexOf(h.ID))
	})

	t.Run("returned hotkeys are copies", func(t *testing.T) {
		table := model.NewHotkeyTable()
		original := model.NewHotkey(combination(t, "a"), model.NewKeyAction(model.ActionKeystroke, combination(t, "b"), "x"))
		table.AddHotkey(original)
		original.Actions[0].Screens[0] = "changed"

		h, _ := table.Hotkey(0)
		h.Actions[0].Screens[0] = "changed too"
		h.Actions = nil

		again, _ := table.Hotkey(0)
		require.Len(t, again.Actions, 1)
		assert.Equal(t, []string{"x"}, again.Actions[0].Screens)
	})
}

func TestActionString(t *testing.T) {
	release := model.NewSwitchInDirection(model.Left)
	release.ActiveOnRelease = true

	tests := []struct {
		action model.Action
		want   string
	}{
		{model.NewSwitchToScreen("beta"), "switchToScreen(beta)"},
		{model.NewSwitchInDirection(model.Up), "switchInDirection(up)"},
		{model.NewLockCursorToScreen(model.LockToggle), "lockCursorToScreen(toggle)"},
		{model.NewKeyAction(model.ActionKeystroke, input.Combination{Mods: tcell.ModCtrl | tcell.ModAlt, Key: tcell.KeyLeft}), "keystroke(Control+Alt+Left)"},
		{model.NewKeyAction(model.ActionKeyDown, input.Combination{Key: tcell.KeyRune, Ch: 'x'}, "a", "b"), "keyDown(x,a:b)"},
		{release, "switchInDirection(left) on release"},
		{model.NewKeyAction(model.ActionKeystroke, input.Combination{Mods: tcell.ModCtrl, Key: tcell.KeyRune, Ch: ','}), "keystroke(Control+Comma)"},
		{model.NewKeyAction(model.ActionKeyUp, input.Combination{Key: tcell.KeyRune, Ch: ','}, "rack-1"), "keyUp(Comma,rack-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.String())

			parsed, err := model.ParseAction(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.action, parsed)
		})
	}

	t.Run("literal comma key", func(t *testing.T) {
		parsed, err := model.ParseAction("keyDown(Control+,,a:b)")
		require.NoError(t, err)
		assert.Equal(t, input.Combination{Mods: tcell.ModCtrl, Key: tcell.KeyRune, Ch: ','}, parsed.Keys)
		assert.Equal(t, []string{"a", "b"}, parsed.Screens)

		parsed, err = model.ParseAction("keystroke(Control+,)")
		require.NoError(t, err)
		assert.Equal(t, "keystroke(Control+Comma)", parsed.String())
		assert.Empty(t, parsed.Screens)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{
			"",
			"switchToScreen",
			"switchToScreen()",
			"teleport(beta)",
			"keystroke(Control+)",
			"switchInDirection(diagonal)",
			"lockCursorToScreen(maybe)",
		} {
			_, err := model.ParseAction(s)
			assert.Error(t, err, "'%s'", s)
		}
	})
}

func TestParseActionKind(t *testing.T) {
	for _, kind := range []model.ActionKind{
		model.ActionKeystroke, model.ActionKeyDown, model.ActionKeyUp,
		model.ActionSwitchToScreen, model.ActionSwitchInDirection, model.ActionLockCursorToScreen,
	} {
		parsed, err := model.ParseActionKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := model.ParseActionKind("explode")
	assert.Error(t, err)

	mode, err := model.ParseLockMode("on")
	require.NoError(t, err)
	assert.Equal(t, model.LockOn, mode)
}
