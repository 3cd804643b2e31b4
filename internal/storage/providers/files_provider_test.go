package providers_test

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/gridconf/internal/model"
	"github.com/ja-he/gridconf/internal/storage"
	"github.com/ja-he/gridconf/internal/storage/providers"
)

func TestFilesConfigProvider(t *testing.T) {

	t.Run("missing file loads defaults", func(t *testing.T) {
		p := providers.NewFilesConfigProvider(path.Join(t.TempDir(), "config.yaml"))
		c, err := p.Load()
		require.NoError(t, err)
		assert.Equal(t, model.DefaultColumns, c.Topology().Columns())
		server, ok := c.Topology().ServerScreen()
		require.True(t, ok)
		assert.Equal(t, model.DefaultServerName, server.Name)
	})

	t.Run("save then load", func(t *testing.T) {
		filename := path.Join(t.TempDir(), "nested", "config.yaml")
		p := providers.NewFilesConfigProvider(filename)

		c := model.NewDefault("main")
		require.NoError(t, c.Topology().PlaceScreen(model.NewScreen("right"), 3, 1))
		c.Settings().Heartbeat = model.Enabled(1000)
		require.NoError(t, p.Save(c))

		entries, err := os.ReadDir(path.Dir(filename))
		require.NoError(t, err)
		require.Len(t, entries, 1, "no temporary files left behind")

		loaded, err := providers.NewFilesConfigProvider(filename).Load()
		require.NoError(t, err)
		assert.Equal(t, "main", loaded.ServerName())
		right, ok := loaded.Topology().AdjacentScreen("main", model.Right)
		require.True(t, ok)
		assert.Equal(t, "right", right.Name)
		heartbeat, on := loaded.Settings().Heartbeat.Get()
		assert.True(t, on)
		assert.Equal(t, 1000, heartbeat)

		// saving again overwrites
		require.NoError(t, loaded.Topology().RemoveScreen("right"))
		require.NoError(t, p.Save(loaded))
		reloaded, err := p.Load()
		require.NoError(t, err)
		assert.Equal(t, 1, reloaded.Topology().Len())
	})

	t.Run("unparsable file", func(t *testing.T) {
		filename := path.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(filename, []byte("screens: {"), 0644))
		_, err := providers.NewFilesConfigProvider(filename).Load()
		assert.Error(t, err)
	})

	t.Run("structurally invalid file", func(t *testing.T) {
		filename := path.Join(t.TempDir(), "config.yaml")
		data := "grid: {columns: 2, rows: 1}\nscreens:\n  - {name: a, column: 0, row: 0}\n  - {name: b, column: 0, row: 0}\n"
		require.NoError(t, os.WriteFile(filename, []byte(data), 0644))
		_, err := providers.NewFilesConfigProvider(filename).Load()
		assert.ErrorIs(t, err, model.ErrCellOccupied)
	})
}

func TestOSPathChecker(t *testing.T) {
	dir := t.TempDir()
	filename := path.Join(dir, "server.conf")
	require.NoError(t, os.WriteFile(filename, []byte("section: screens\nend\n"), 0644))

	checker := storage.OSPathChecker{}
	assert.True(t, checker.Exists(filename))
	assert.False(t, checker.Exists(path.Join(dir, "missing.conf")))
	assert.False(t, checker.Exists(dir), "directories do not count")

	c := model.NewDefault("main")
	c.Settings().ExternalConfig = model.ExternalConfig{Enabled: true, Path: filename}
	assert.Empty(t, c.Validate(checker))
}
