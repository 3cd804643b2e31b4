package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/gridconf/internal/config"
	"github.com/ja-he/gridconf/internal/input"
	"github.com/ja-he/gridconf/internal/model"
)

const exampleYAML = `
server-name: desk
grid:
  columns: 4
  rows: 2
screens:
  - name: desk
    column: 1
    row: 1
    server: true
  - name: laptop
    column: 0
    row: 1
hotkeys:
  - keys: Control+Alt+Left
    actions:
      - type: switchToScreen
        target: laptop
      - type: lockCursorToScreen
        mode: on
  - keys: Meta+F1
    actions:
      - type: keystroke
        keys: Control+c
        screens: [laptop]
        on-release: true
options:
  relative-mouse-moves: true
  clipboard-size-limit-bytes: 0
  heartbeat:
    enabled: true
    value: 5000
  switch-corners:
    top-left: true
  corner-size: 12
`

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty input gives defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte{})
		require.NoError(t, err)
		assert.Equal(t, config.Default(), c)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults([]byte("grid: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("partial options keep defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte("options:\n  corner-size: 3\n"))
		require.NoError(t, err)
		require.NotNil(t, c.Options.ClipboardSharing)
		assert.True(t, *c.Options.ClipboardSharing)
		require.NotNil(t, c.Options.ClipboardSizeLimitBytes)
		assert.Equal(t, model.DefaultClipboardSizeLimitBytes, *c.Options.ClipboardSizeLimitBytes)
		assert.Equal(t, 3, c.Options.CornerSize)
		assert.Equal(t, model.DefaultColumns, c.Grid.Columns)
	})

	t.Run("full example", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte(exampleYAML))
		require.NoError(t, err)

		cfg, err := config.ToServerConfig(c)
		require.NoError(t, err)

		assert.Equal(t, "desk", cfg.ServerName())
		assert.Equal(t, 4, cfg.Topology().Columns())
		server, ok := cfg.Topology().ServerScreen()
		require.True(t, ok)
		assert.Equal(t, "desk", server.Name)
		laptop, ok := cfg.Topology().AdjacentScreen("desk", model.Left)
		require.True(t, ok)
		assert.Equal(t, "laptop", laptop.Name)

		hotkeys := cfg.Hotkeys().Hotkeys()
		require.Len(t, hotkeys, 2)
		assert.Equal(t, "Control+Alt+Left", hotkeys[0].Combination.String())
		require.Len(t, hotkeys[0].Actions, 2)
		assert.Equal(t, model.NewSwitchToScreen("laptop").String(), hotkeys[0].Actions[0].String())
		assert.Equal(t, model.LockOn, hotkeys[0].Actions[1].LockMode)
		assert.Equal(t, "keystroke(Control+c,laptop) on release", hotkeys[1].Actions[0].String())

		s := cfg.Settings()
		assert.True(t, s.RelativeMouseMoves)
		assert.True(t, s.ClipboardSharingEnabled)
		assert.False(t, s.EffectiveClipboardSharing(), "zero limit disables sharing")
		heartbeat, on := s.Heartbeat.Get()
		assert.True(t, on)
		assert.Equal(t, 5000, heartbeat)
		assert.False(t, s.SwitchDelay.IsEnabled())
		assert.Equal(t, []model.Corner{model.TopLeft}, s.EnabledCorners())
		assert.Equal(t, 12, s.CornerSize)

		assert.Empty(t, cfg.Validate(nil))
	})
}

func TestToServerConfigErrors(t *testing.T) {
	base := func() config.Config {
		c := config.Default()
		c.Grid = config.Grid{Columns: 2, Rows: 1}
		return c
	}

	tests := []struct {
		name   string
		modify func(*config.Config)
		want   error
	}{
		{"bad grid", func(c *config.Config) { c.Grid.Rows = 0 }, model.ErrInvalidDimensions},
		{"screen out of bounds", func(c *config.Config) {
			c.Screens = []config.Screen{{Name: "a", Column: 5}}
		}, model.ErrOutOfBounds},
		{"screens share a cell", func(c *config.Config) {
			c.Screens = []config.Screen{{Name: "a"}, {Name: "b"}}
		}, model.ErrCellOccupied},
		{"screens share a name", func(c *config.Config) {
			c.Screens = []config.Screen{{Name: "a"}, {Name: "a", Column: 1}}
		}, model.ErrDuplicateName},
		{"two servers", func(c *config.Config) {
			c.ServerName = "a"
			c.Screens = []config.Screen{{Name: "a", Server: true}, {Name: "b", Column: 1, Server: true}}
		}, model.ErrMultipleServers},
		{"invalid screen name", func(c *config.Config) {
			c.Screens = []config.Screen{{Name: "rack:1"}}
		}, model.ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.modify(&c)
			_, err := config.ToServerConfig(c)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("bad actions", func(t *testing.T) {
		for _, a := range []config.Action{
			{Type: "explode"},
			{Type: "keystroke", Keys: "Control+"},
			{Type: "switchToScreen"},
			{Type: "switchInDirection", Direction: "sideways"},
			{Type: "lockCursorToScreen", Mode: "sometimes"},
		} {
			c := base()
			c.Hotkeys = []config.Hotkey{{Keys: "a", Actions: []config.Action{a}}}
			_, err := config.ToServerConfig(c)
			assert.Error(t, err, "action %+v", a)
		}
	})

	t.Run("bad hotkey keys", func(t *testing.T) {
		c := base()
		c.Hotkeys = []config.Hotkey{{Keys: "Control+Alt"}}
		_, err := config.ToServerConfig(c)
		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	original, err := model.New(5, 3, "main")
	require.NoError(t, err)
	topology := original.Topology()
	require.NoError(t, topology.PlaceScreen(model.NewScreen("main"), 2, 1))
	require.NoError(t, topology.PlaceScreen(model.NewScreen("left"), 1, 1))
	require.NoError(t, topology.PlaceScreen(model.NewScreen("top"), 2, 0))
	require.NoError(t, topology.MarkAsServer("main"))

	keys, err := input.ParseCombination("Shift+Control+Up")
	require.NoError(t, err)
	original.Hotkeys().AddHotkey(model.NewHotkey(keys,
		model.NewSwitchToScreen("top"),
		model.NewSwitchInDirection(model.Down),
		model.NewKeyAction(model.ActionKeyUp, keys, "left", "top"),
	))
	original.Settings().SwitchDoubleTap = model.Enabled(0)
	original.Settings().SetCorner(model.BottomLeft, true)
	original.Settings().ExternalConfig = model.ExternalConfig{Path: "/tmp/x.conf"}
	original.Settings().SetClipboardSharing(false)

	data, err := config.Marshal(config.FromServerConfig(original))
	require.NoError(t, err)
	parsed, err := config.ParseConfigAugmentDefaults(data)
	require.NoError(t, err)
	restored, err := config.ToServerConfig(parsed)
	require.NoError(t, err)

	assert.Equal(t, original.ServerName(), restored.ServerName())
	assert.Equal(t, original.Topology().Columns(), restored.Topology().Columns())
	assert.Equal(t, original.Topology().Rows(), restored.Topology().Rows())

	stripIDs := func(screens []model.Screen) []model.Screen {
		for i := range screens {
			screens[i].ID = model.ScreenID{}
		}
		return screens
	}
	assert.Equal(t, stripIDs(original.Topology().Screens()), stripIDs(restored.Topology().Screens()))

	want := original.Hotkeys().Hotkeys()
	got := restored.Hotkeys().Hotkeys()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Combination, got[i].Combination)
		assert.Equal(t, want[i].Actions, got[i].Actions)
	}

	assert.Equal(t, *original.Settings(), *restored.Settings())
}
