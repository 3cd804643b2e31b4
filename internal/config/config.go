package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/gridconf/internal/input"
)

// Config is the configuration data as present in a config file at
// '${GRIDCONF_HOME}/config.yaml'.
type Config struct {
	ServerName string   `yaml:"server-name,omitempty"`
	Grid       Grid     `yaml:"grid"`
	Screens    []Screen `yaml:"screens,omitempty"`
	Hotkeys    []Hotkey `yaml:"hotkeys,omitempty"`
	Options    Options  `yaml:"options"`
}

// Grid is the size of the screen grid.
type Grid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// A Screen as defined in a config file.
type Screen struct {
	Name   string `yaml:"name"`
	Column int    `yaml:"column"`
	Row    int    `yaml:"row"`
	Server bool   `yaml:"server,omitempty"`
}

// A Hotkey as defined in a config file.
// Keys is a combination such as "Control+Alt+Left".
type Hotkey struct {
	Keys    input.Keyspec `yaml:"keys"`
	Actions []Action      `yaml:"actions,omitempty"`
}

// An Action as defined in a config file.
//
// Type is one of the action kind names (e.g. "switchToScreen"); which of the
// other fields is used depends on it.
type Action struct {
	Type      string        `yaml:"type"`
	Keys      input.Keyspec `yaml:"keys,omitempty"`
	Screens   []string      `yaml:"screens,omitempty"`
	Target    string        `yaml:"target,omitempty"`
	Direction string        `yaml:"direction,omitempty"`
	Mode      string        `yaml:"mode,omitempty"`
	OnRelease bool          `yaml:"on-release,omitempty"`
}

// Options are the server settings as defined in a config file.
//
// Settings whose default is not the zero value are pointers, so that leaving
// them out of a file keeps the default.
type Options struct {
	RelativeMouseMoves     bool `yaml:"relative-mouse-moves,omitempty"`
	Win32KeepForeground    bool `yaml:"win32-keep-foreground,omitempty"`
	IgnoreAutoConfigClient bool `yaml:"ignore-auto-config-client,omitempty"`
	DisableLockToScreen    bool `yaml:"disable-lock-to-screen,omitempty"`

	ClipboardSharing        *bool   `yaml:"clipboard-sharing,omitempty"`
	ClipboardSizeLimitBytes *uint64 `yaml:"clipboard-size-limit-bytes,omitempty"`

	Heartbeat       *Toggled `yaml:"heartbeat,omitempty"`
	SwitchDelay     *Toggled `yaml:"switch-delay,omitempty"`
	SwitchDoubleTap *Toggled `yaml:"switch-double-tap,omitempty"`

	SwitchCorners SwitchCorners `yaml:"switch-corners,omitempty"`
	CornerSize    int           `yaml:"corner-size,omitempty"`

	ExternalConfig ExternalConfig `yaml:"external-config,omitempty"`
}

// Toggled is a numeric setting that can be switched off.
type Toggled struct {
	Enabled bool `yaml:"enabled"`
	Value   int  `yaml:"value"`
}

// SwitchCorners are the corners that trigger a screen switch.
type SwitchCorners struct {
	TopLeft     bool `yaml:"top-left,omitempty"`
	TopRight    bool `yaml:"top-right,omitempty"`
	BottomLeft  bool `yaml:"bottom-left,omitempty"`
	BottomRight bool `yaml:"bottom-right,omitempty"`
}

// ExternalConfig points at an externally managed server configuration file.
type ExternalConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

// Marshal renders the configuration as YAML.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("error marshaling yaml (%w)", err)
	}
	return data, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.ServerName != "" {
		result.ServerName = augment.ServerName
	}
	if augment.Grid.Columns > 0 {
		result.Grid.Columns = augment.Grid.Columns
	}
	if augment.Grid.Rows > 0 {
		result.Grid.Rows = augment.Grid.Rows
	}
	if len(augment.Screens) > 0 {
		result.Screens = augment.Screens
	}
	if len(augment.Hotkeys) > 0 {
		result.Hotkeys = augment.Hotkeys
	}

	result.Options = base.Options.augmentWith(augment.Options)

	return result
}

func (base Options) augmentWith(augment Options) Options {
	result := augment

	if result.ClipboardSharing == nil {
		result.ClipboardSharing = base.ClipboardSharing
	}
	if result.ClipboardSizeLimitBytes == nil {
		result.ClipboardSizeLimitBytes = base.ClipboardSizeLimitBytes
	}
	if result.Heartbeat == nil {
		result.Heartbeat = base.Heartbeat
	}
	if result.SwitchDelay == nil {
		result.SwitchDelay = base.SwitchDelay
	}
	if result.SwitchDoubleTap == nil {
		result.SwitchDoubleTap = base.SwitchDoubleTap
	}

	return result
}
