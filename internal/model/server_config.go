package model

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/gridconf/internal/input"
)

// DefaultServerName is the name given to the server screen when none is
// configured.
const DefaultServerName = "server"

// Default grid size of a fresh configuration.
const (
	DefaultColumns = 5
	DefaultRows    = 3
)

// ServerConfig is the complete server configuration: the screen topology,
// the hotkeys, and the settings.
//
// A ServerConfig is owned by whoever edits it and is not safe for concurrent
// use. To hand it to a running server, validate it and pass on a Snapshot.
type ServerConfig struct {
	serverName string

	topology *Topology
	hotkeys  *HotkeyTable
	settings Settings
}

// New returns a configuration with an empty grid of the given size, no
// hotkeys, and default settings.
// An empty server name is replaced by DefaultServerName.
func New(columns, rows int, serverName string) (*ServerConfig, error) {
	topology, err := NewTopology(columns, rows)
	if err != nil {
		return nil, err
	}
	if serverName == "" {
		serverName = DefaultServerName
	}
	return &ServerConfig{
		serverName: serverName,
		topology:   topology,
		hotkeys:    NewHotkeyTable(),
		settings:   DefaultSettings(),
	}, nil
}

// NewDefault returns a default-sized configuration with the server screen
// already placed (see EnsureServer).
func NewDefault(serverName string) *ServerConfig {
	c, err := New(DefaultColumns, DefaultRows, serverName)
	if err != nil {
		panic(err) // default dimensions are valid
	}
	c.EnsureServer()
	return c
}

// ServerName returns the name the server screen is expected to have.
func (c *ServerConfig) ServerName() string { return c.serverName }

// SetServerName sets the name the server screen is expected to have.
// It does not rename any screen.
func (c *ServerConfig) SetServerName(name string) { c.serverName = name }

// Topology returns the screen topology.
func (c *ServerConfig) Topology() *Topology { return c.topology }

// Hotkeys returns the hotkey table.
func (c *ServerConfig) Hotkeys() *HotkeyTable { return c.hotkeys }

// Settings returns the settings for reading and modification.
func (c *ServerConfig) Settings() *Settings { return &c.settings }

// EnsureServer makes sure a server screen is designated.
// If a screen is already marked as server, this does nothing. Otherwise, a
// screen named like the server is marked (it stays where it is), or, if there
// is no such screen, one is placed at the center cell (columns/2, rows/2) if
// that is free.
// Returns whether a server screen is designated afterwards.
func (c *ServerConfig) EnsureServer() bool {
	if _, ok := c.topology.ServerScreen(); ok {
		return true
	}

	if _, ok := c.topology.Screen(c.serverName); ok {
		log.Debug().Str("screen", c.serverName).Msg("marking existing screen as server")
		return c.topology.MarkAsServer(c.serverName) == nil
	}

	column, row := c.topology.Columns()/2, c.topology.Rows()/2
	server := NewScreen(c.serverName)
	server.IsServer = true
	if err := c.topology.PlaceScreen(server, column, row); err != nil {
		log.Debug().Err(err).Str("screen", c.serverName).Msg("could not place default server screen")
		return false
	}
	log.Debug().Str("screen", c.serverName).Int("column", column).Int("row", row).Msg("placed default server screen")
	return true
}

// Snapshot returns a deep, read-only copy of the configuration, unaffected by
// any later change to c.
// It is meant to be taken once Validate reports no errors; it does not check
// that itself.
func (c *ServerConfig) Snapshot() Snapshot {
	return Snapshot{
		serverName: c.serverName,
		topology:   c.topology.clone(),
		hotkeys:    c.hotkeys.clone(),
		settings:   c.settings,
	}
}

// Snapshot is a read-only copy of a ServerConfig, as consumed by a running
// server.
type Snapshot struct {
	serverName string
	topology   *Topology
	hotkeys    *HotkeyTable
	settings   Settings
}

// ServerName returns the configured server name.
func (s Snapshot) ServerName() string { return s.serverName }

// Columns returns the number of grid columns.
func (s Snapshot) Columns() int { return s.topology.Columns() }

// Rows returns the number of grid rows.
func (s Snapshot) Rows() int { return s.topology.Rows() }

// Screens returns all screens in row-major order.
func (s Snapshot) Screens() []Screen { return s.topology.Screens() }

// Screen returns the named screen.
func (s Snapshot) Screen(name string) (Screen, bool) { return s.topology.Screen(name) }

// ServerScreen returns the server screen.
func (s Snapshot) ServerScreen() (Screen, bool) { return s.topology.ServerScreen() }

// AdjacentScreen returns the screen next to the named one in the given
// direction.
func (s Snapshot) AdjacentScreen(name string, d Direction) (Screen, bool) {
	return s.topology.AdjacentScreen(name, d)
}

// Links lists every link between neighboring screens.
func (s Snapshot) Links() []Link { return s.topology.Links() }

// Hotkeys returns copies of all hotkeys in order.
func (s Snapshot) Hotkeys() []Hotkey { return s.hotkeys.Hotkeys() }

// HotkeysFor returns copies of all hotkeys bound to the combination, in table
// order.
func (s Snapshot) HotkeysFor(combination input.Combination) []Hotkey {
	var result []Hotkey
	for _, h := range s.hotkeys.Hotkeys() {
		if h.Combination == combination {
			result = append(result, h)
		}
	}
	return result
}

// Settings returns a copy of the settings.
func (s Snapshot) Settings() Settings { return s.settings }
