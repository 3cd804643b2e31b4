package model

import (
	"fmt"
	"strings"

	"github.com/ja-he/gridconf/internal/input"
)

// ActionKind is the kind of an action.
type ActionKind int

const (
	// ActionKeystroke presses and releases a key combination.
	ActionKeystroke ActionKind = iota
	// ActionKeyDown presses a key combination.
	ActionKeyDown
	// ActionKeyUp releases a key combination.
	ActionKeyUp
	// ActionSwitchToScreen moves the cursor to a named screen.
	ActionSwitchToScreen
	// ActionSwitchInDirection moves the cursor to the neighboring screen.
	ActionSwitchInDirection
	// ActionLockCursorToScreen locks (or unlocks) the cursor to its current
	// screen.
	ActionLockCursorToScreen
)

var actionKindNames = map[ActionKind]string{
	ActionKeystroke:          "keystroke",
	ActionKeyDown:            "keyDown",
	ActionKeyUp:              "keyUp",
	ActionSwitchToScreen:     "switchToScreen",
	ActionSwitchInDirection:  "switchInDirection",
	ActionLockCursorToScreen: "lockCursorToScreen",
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// ParseActionKind parses an action kind name as returned by
// ActionKind.String (case-insensitive).
func ParseActionKind(s string) (ActionKind, error) {
	for kind, name := range actionKindNames {
		if strings.EqualFold(s, name) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown action kind '%s'", s)
}

// IsKeyKind returns whether actions of this kind send a key combination.
func (k ActionKind) IsKeyKind() bool {
	return k == ActionKeystroke || k == ActionKeyDown || k == ActionKeyUp
}

// LockMode is what an ActionLockCursorToScreen does to the lock.
type LockMode int

const (
	LockToggle LockMode = iota
	LockOn
	LockOff
)

func (m LockMode) String() string {
	switch m {
	case LockOn:
		return "on"
	case LockOff:
		return "off"
	default:
		return "toggle"
	}
}

// ParseLockMode parses a lock mode as returned by LockMode.String.
func ParseLockMode(s string) (LockMode, error) {
	switch strings.ToLower(s) {
	case "toggle", "":
		return LockToggle, nil
	case "on":
		return LockOn, nil
	case "off":
		return LockOff, nil
	default:
		return 0, fmt.Errorf("unknown lock mode '%s'", s)
	}
}

const onReleaseSuffix = " on release"

// Action is a unit of behavior executed when a hotkey fires.
//
// Which fields are meaningful depends on the kind:
//   - key kinds: Keys, and Screens (the screens to send the key to; all if
//     empty)
//   - ActionSwitchToScreen: Target
//   - ActionSwitchInDirection: Direction
//   - ActionLockCursorToScreen: LockMode
//
// Screen names are not checked when an action is created; see
// ServerConfig.Validate.
type Action struct {
	Kind            ActionKind
	Keys            input.Combination
	Screens         []string
	Target          string
	Direction       Direction
	LockMode        LockMode
	ActiveOnRelease bool
}

// NewKeyAction returns a key action of the given kind.
func NewKeyAction(kind ActionKind, keys input.Combination, screens ...string) Action {
	return Action{Kind: kind, Keys: keys, Screens: screens}
}

// NewSwitchToScreen returns an action switching to the named screen.
func NewSwitchToScreen(target string) Action {
	return Action{Kind: ActionSwitchToScreen, Target: target}
}

// NewSwitchInDirection returns an action switching to the neighboring screen.
func NewSwitchInDirection(d Direction) Action {
	return Action{Kind: ActionSwitchInDirection, Direction: d}
}

// NewLockCursorToScreen returns an action changing the cursor lock.
func NewLockCursorToScreen(mode LockMode) Action {
	return Action{Kind: ActionLockCursorToScreen, LockMode: mode}
}

// ReferencedScreens returns the names of all screens this action refers to.
func (a Action) ReferencedScreens() []string {
	switch {
	case a.Kind == ActionSwitchToScreen:
		return []string{a.Target}
	case a.Kind.IsKeyKind():
		return a.Screens
	default:
		return nil
	}
}

// String renders the action, e.g. "switchToScreen(beta)" or
// "keystroke(Control+Alt+Left,alpha:beta)".
func (a Action) String() string {
	var arg string
	switch {
	case a.Kind.IsKeyKind():
		arg = a.Keys.String()
		if len(a.Screens) > 0 {
			arg += "," + strings.Join(a.Screens, ":")
		}
	case a.Kind == ActionSwitchToScreen:
		arg = a.Target
	case a.Kind == ActionSwitchInDirection:
		arg = a.Direction.String()
	case a.Kind == ActionLockCursorToScreen:
		arg = a.LockMode.String()
	}
	s := fmt.Sprintf("%s(%s)", a.Kind, arg)
	if a.ActiveOnRelease {
		s += onReleaseSuffix
	}
	return s
}

// ParseAction parses an action in the form rendered by Action.String.
func ParseAction(s string) (Action, error) {
	spec := strings.TrimSpace(s)
	onRelease := false
	if strings.HasSuffix(spec, onReleaseSuffix) {
		onRelease = true
		spec = strings.TrimSpace(strings.TrimSuffix(spec, onReleaseSuffix))
	}

	open := strings.IndexByte(spec, '(')
	if open < 0 || !strings.HasSuffix(spec, ")") {
		return Action{}, fmt.Errorf("action '%s' not of the form kind(argument)", s)
	}
	kind, err := ParseActionKind(spec[:open])
	if err != nil {
		return Action{}, err
	}
	arg := strings.TrimSpace(spec[open+1 : len(spec)-1])

	var result Action
	switch {
	case kind.IsKeyKind():
		keys, screens := arg, ""
		// screen names never contain ',' but the key may be one
		if i := strings.LastIndexByte(arg, ','); i >= 0 && i < len(arg)-1 {
			keys, screens = arg[:i], arg[i+1:]
		}
		combination, err := input.ParseCombination(input.Keyspec(keys))
		if err != nil {
			return Action{}, err
		}
		result = NewKeyAction(kind, combination)
		if screens != "" {
			result.Screens = strings.Split(screens, ":")
		}
	case kind == ActionSwitchToScreen:
		if arg == "" {
			return Action{}, fmt.Errorf("%s without target", kind)
		}
		result = NewSwitchToScreen(arg)
	case kind == ActionSwitchInDirection:
		direction, err := ParseDirection(arg)
		if err != nil {
			return Action{}, err
		}
		result = NewSwitchInDirection(direction)
	case kind == ActionLockCursorToScreen:
		mode, err := ParseLockMode(arg)
		if err != nil {
			return Action{}, err
		}
		result = NewLockCursorToScreen(mode)
	}
	result.ActiveOnRelease = onRelease

	return result, nil
}

func (a Action) clone() Action {
	c := a
	if a.Screens != nil {
		c.Screens = append([]string(nil), a.Screens...)
	}
	return c
}
