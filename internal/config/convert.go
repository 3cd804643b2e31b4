package config

import (
	"fmt"

	"github.com/ja-he/gridconf/internal/input"
	"github.com/ja-he/gridconf/internal/model"
)

// ToServerConfig constructs a ServerConfig from config data.
//
// Screens are placed in the order given, so a config placing two screens in
// the same cell or under the same name is rejected, as is one marking more
// than one screen as server. Once all screens are
// placed, a server screen is designated if the data did not mark one (see
// model.ServerConfig.EnsureServer).
// Hotkey actions referring to unknown screens are not rejected here; they are
// reported by Validate.
func ToServerConfig(c Config) (*model.ServerConfig, error) {
	result, err := model.New(c.Grid.Columns, c.Grid.Rows, c.ServerName)
	if err != nil {
		return nil, fmt.Errorf("error creating server config (%w)", err)
	}

	topology := result.Topology()
	server := ""
	for i, s := range c.Screens {
		if s.Server {
			if server != "" {
				return nil, fmt.Errorf("screen no. %d '%s' marked as server after '%s' (%w)", i, s.Name, server, model.ErrMultipleServers)
			}
			server = s.Name
		}
		screen := model.NewScreen(s.Name)
		screen.IsServer = s.Server
		if err := topology.PlaceScreen(screen, s.Column, s.Row); err != nil {
			return nil, fmt.Errorf("error placing screen no. %d (%w)", i, err)
		}
	}

	hotkeys := result.Hotkeys()
	for i, h := range c.Hotkeys {
		combination, err := input.ParseCombination(h.Keys)
		if err != nil {
			return nil, fmt.Errorf("error parsing keys of hotkey no. %d: %w", i, err)
		}
		hotkey := model.NewHotkey(combination)
		for j, a := range h.Actions {
			action, err := toAction(a)
			if err != nil {
				return nil, fmt.Errorf("error parsing action no. %d of hotkey no. %d: %w", j, i, err)
			}
			hotkey.Actions = append(hotkey.Actions, action)
		}
		hotkeys.AddHotkey(hotkey)
	}

	applyOptions(result.Settings(), c.Options)

	result.EnsureServer()

	return result, nil
}

func toAction(a Action) (model.Action, error) {
	kind, err := model.ParseActionKind(a.Type)
	if err != nil {
		return model.Action{}, err
	}

	var result model.Action
	switch kind {
	case model.ActionKeystroke, model.ActionKeyDown, model.ActionKeyUp:
		keys, err := input.ParseCombination(a.Keys)
		if err != nil {
			return model.Action{}, err
		}
		result = model.NewKeyAction(kind, keys, a.Screens...)
	case model.ActionSwitchToScreen:
		if a.Target == "" {
			return model.Action{}, fmt.Errorf("%s without target", kind)
		}
		result = model.NewSwitchToScreen(a.Target)
	case model.ActionSwitchInDirection:
		direction, err := model.ParseDirection(a.Direction)
		if err != nil {
			return model.Action{}, err
		}
		result = model.NewSwitchInDirection(direction)
	case model.ActionLockCursorToScreen:
		mode, err := model.ParseLockMode(a.Mode)
		if err != nil {
			return model.Action{}, err
		}
		result = model.NewLockCursorToScreen(mode)
	}
	result.ActiveOnRelease = a.OnRelease

	return result, nil
}

func applyOptions(s *model.Settings, o Options) {
	s.RelativeMouseMoves = o.RelativeMouseMoves
	s.KeepForegroundOnWin32 = o.Win32KeepForeground
	s.IgnoreAutoConfigClient = o.IgnoreAutoConfigClient
	s.DisableLockToScreen = o.DisableLockToScreen

	if o.ClipboardSizeLimitBytes != nil {
		s.ClipboardSizeLimitBytes = *o.ClipboardSizeLimitBytes
	}
	if o.ClipboardSharing != nil {
		s.ClipboardSharingEnabled = *o.ClipboardSharing
	}

	s.Heartbeat = toOptional(o.Heartbeat)
	s.SwitchDelay = toOptional(o.SwitchDelay)
	s.SwitchDoubleTap = toOptional(o.SwitchDoubleTap)

	s.SetCorner(model.TopLeft, o.SwitchCorners.TopLeft)
	s.SetCorner(model.TopRight, o.SwitchCorners.TopRight)
	s.SetCorner(model.BottomLeft, o.SwitchCorners.BottomLeft)
	s.SetCorner(model.BottomRight, o.SwitchCorners.BottomRight)
	s.CornerSize = o.CornerSize

	s.ExternalConfig = model.ExternalConfig{
		Enabled: o.ExternalConfig.Enabled,
		Path:    o.ExternalConfig.Path,
	}
}

func toOptional(t *Toggled) model.Optional {
	if t == nil || !t.Enabled {
		return model.Disabled()
	}
	return model.Enabled(t.Value)
}

// FromServerConfig constructs config data from a ServerConfig, e.g. for
// writing it to a file.
func FromServerConfig(c *model.ServerConfig) Config {
	topology := c.Topology()
	result := Config{
		ServerName: c.ServerName(),
		Grid: Grid{
			Columns: topology.Columns(),
			Rows:    topology.Rows(),
		},
	}

	for _, s := range topology.Screens() {
		result.Screens = append(result.Screens, Screen{
			Name:   s.Name,
			Column: s.Position.Column,
			Row:    s.Position.Row,
			Server: s.IsServer,
		})
	}

	for _, h := range c.Hotkeys().Hotkeys() {
		hotkey := Hotkey{Keys: h.Combination.Keyspec()}
		for _, a := range h.Actions {
			hotkey.Actions = append(hotkey.Actions, fromAction(a))
		}
		result.Hotkeys = append(result.Hotkeys, hotkey)
	}

	result.Options = fromSettings(c.Settings())

	return result
}

func fromAction(a model.Action) Action {
	result := Action{
		Type:      a.Kind.String(),
		OnRelease: a.ActiveOnRelease,
	}
	switch {
	case a.Kind.IsKeyKind():
		result.Keys = a.Keys.Keyspec()
		result.Screens = a.Screens
	case a.Kind == model.ActionSwitchToScreen:
		result.Target = a.Target
	case a.Kind == model.ActionSwitchInDirection:
		result.Direction = a.Direction.String()
	case a.Kind == model.ActionLockCursorToScreen:
		result.Mode = a.LockMode.String()
	}
	return result
}

func fromSettings(s *model.Settings) Options {
	clipboardSharing := s.ClipboardSharingEnabled
	clipboardSizeLimit := s.ClipboardSizeLimitBytes
	return Options{
		RelativeMouseMoves:     s.RelativeMouseMoves,
		Win32KeepForeground:    s.KeepForegroundOnWin32,
		IgnoreAutoConfigClient: s.IgnoreAutoConfigClient,
		DisableLockToScreen:    s.DisableLockToScreen,

		ClipboardSharing:        &clipboardSharing,
		ClipboardSizeLimitBytes: &clipboardSizeLimit,

		Heartbeat:       fromOptional(s.Heartbeat),
		SwitchDelay:     fromOptional(s.SwitchDelay),
		SwitchDoubleTap: fromOptional(s.SwitchDoubleTap),

		SwitchCorners: SwitchCorners{
			TopLeft:     s.Corner(model.TopLeft),
			TopRight:    s.Corner(model.TopRight),
			BottomLeft:  s.Corner(model.BottomLeft),
			BottomRight: s.Corner(model.BottomRight),
		},
		CornerSize: s.CornerSize,

		ExternalConfig: ExternalConfig{
			Enabled: s.ExternalConfig.Enabled,
			Path:    s.ExternalConfig.Path,
		},
	}
}

func fromOptional(o model.Optional) *Toggled {
	value, enabled := o.Get()
	if !enabled {
		return nil
	}
	return &Toggled{Enabled: true, Value: value}
}
