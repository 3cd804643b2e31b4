package model

import (
	"fmt"
	"strconv"
)

// DefaultClipboardSizeLimitBytes is the clipboard size limit used when
// sharing is switched on without a limit.
const DefaultClipboardSizeLimitBytes uint64 = 3 * 1024 * 1024

const bytesPerKB = 1024

// Optional is a numeric setting that is either off or on with a value.
// "Off" and "on with value 0" are distinct; there is no way to be on without
// a value.
type Optional struct {
	enabled bool
	value   int
}

// Disabled returns a switched-off optional setting.
func Disabled() Optional { return Optional{} }

// Enabled returns a switched-on optional setting with the given value.
func Enabled(value int) Optional { return Optional{enabled: true, value: value} }

// Get returns the value and whether the setting is on.
func (o Optional) Get() (int, bool) { return o.value, o.enabled }

// IsEnabled returns whether the setting is on.
func (o Optional) IsEnabled() bool { return o.enabled }

// ValueOr returns the value if the setting is on, else the fallback.
func (o Optional) ValueOr(fallback int) int {
	if !o.enabled {
		return fallback
	}
	return o.value
}

func (o Optional) String() string {
	if !o.enabled {
		return "off"
	}
	return strconv.Itoa(o.value)
}

// Corner is a screen corner that can trigger a switch.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
	cornerCount
)

// Corners lists all corners.
var Corners = []Corner{TopLeft, TopRight, BottomLeft, BottomRight}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("corner(%d)", int(c))
	}
}

// ExternalConfig is the mode in which the server reads its configuration
// from an externally managed file instead of these settings.
type ExternalConfig struct {
	Enabled bool
	Path    string
}

// Settings are the behavioral settings of the server.
//
// Timing values (Heartbeat, SwitchDelay, SwitchDoubleTap) are milliseconds;
// CornerSize is pixels and applies to all enabled corners.
type Settings struct {
	RelativeMouseMoves     bool
	KeepForegroundOnWin32  bool
	IgnoreAutoConfigClient bool
	DisableLockToScreen    bool

	ClipboardSharingEnabled bool
	ClipboardSizeLimitBytes uint64

	Heartbeat       Optional
	SwitchDelay     Optional
	SwitchDoubleTap Optional

	SwitchCorners [cornerCount]bool
	CornerSize    int

	ExternalConfig ExternalConfig
}

// DefaultSettings returns the settings of a fresh configuration.
func DefaultSettings() Settings {
	return Settings{
		ClipboardSharingEnabled: true,
		ClipboardSizeLimitBytes: DefaultClipboardSizeLimitBytes,
	}
}

// EffectiveClipboardSharing returns whether the clipboard is actually shared,
// which requires both the flag and a non-zero size limit.
func (s *Settings) EffectiveClipboardSharing() bool {
	return s.ClipboardSharingEnabled && s.ClipboardSizeLimitBytes > 0
}

// SetClipboardSharing switches clipboard sharing on or off.
// Switching it on while the limit is zero sets the default limit.
func (s *Settings) SetClipboardSharing(on bool) {
	s.ClipboardSharingEnabled = on
	if on && s.ClipboardSizeLimitBytes == 0 {
		s.ClipboardSizeLimitBytes = DefaultClipboardSizeLimitBytes
	}
}

// ClipboardSizeLimitKB returns the size limit in kilobytes, rounded to the
// nearest kilobyte.
func (s *Settings) ClipboardSizeLimitKB() uint64 {
	return (s.ClipboardSizeLimitBytes + bytesPerKB/2) / bytesPerKB
}

// SetClipboardSizeLimitKB sets the size limit from kilobytes.
func (s *Settings) SetClipboardSizeLimitKB(kb uint64) {
	s.ClipboardSizeLimitBytes = kb * bytesPerKB
}

// DefaultClipboardSizeLimitKB returns the default limit in kilobytes,
// rounded half up and never below 1.
func DefaultClipboardSizeLimitKB() uint64 {
	kb := (DefaultClipboardSizeLimitBytes + bytesPerKB/2) / bytesPerKB
	if kb == 0 {
		return 1
	}
	return kb
}

// Corner returns whether the given corner triggers a switch.
func (s *Settings) Corner(c Corner) bool {
	if c < 0 || c >= cornerCount {
		return false
	}
	return s.SwitchCorners[c]
}

// SetCorner sets whether the given corner triggers a switch.
func (s *Settings) SetCorner(c Corner, on bool) {
	if c < 0 || c >= cornerCount {
		return
	}
	s.SwitchCorners[c] = on
}

// EnabledCorners returns the corners that trigger a switch.
func (s *Settings) EnabledCorners() []Corner {
	var result []Corner
	for _, c := range Corners {
		if s.SwitchCorners[c] {
			result = append(result, c)
		}
	}
	return result
}
