package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Combination is a key chord, i.E. any number of held modifiers plus exactly
// one key.
//
// The modifiers are kept as a mask, so two combinations that name the same
// modifiers in a different order are equal (and can be compared with ==).
type Combination struct {
	Mods tcell.ModMask
	Key  tcell.Key
	Ch   rune
}

// IsZero returns whether this combination is unset.
func (c Combination) IsZero() bool {
	return c == Combination{}
}

// modifierOrder is the order in which modifiers are written out.
var modifierOrder = []tcell.ModMask{tcell.ModShift, tcell.ModCtrl, tcell.ModAlt, tcell.ModMeta}

var modifierNames = map[tcell.ModMask]string{
	tcell.ModShift: "Shift",
	tcell.ModCtrl:  "Control",
	tcell.ModAlt:   "Alt",
	tcell.ModMeta:  "Meta",
}

// ParseCombination converts a combination specification (e.g.
// "Control+Alt+Left" meaning the LEFT key while CONTROL and ALT are held) to
// the appropriate Combination (or an error, if invalid).
//
// Modifier and key identifiers are case-insensitive, modifiers may be given in
// any order, but exactly one non-modifier key must be present.
func ParseCombination(spec Keyspec) (Combination, error) {
	if strings.TrimSpace(string(spec)) == "" {
		return Combination{}, fmt.Errorf("empty key combination")
	}

	var result Combination
	haveKey := false

	for pos, part := range strings.Split(string(spec), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Combination{}, fmt.Errorf("empty identifier in combination '%s' (part %d)", spec, pos)
		}

		if mod, ok := ModifierIdentifierToMask(part); ok {
			if result.Mods&mod != 0 {
				return Combination{}, fmt.Errorf("modifier '%s' given twice in combination '%s'", part, spec)
			}
			result.Mods |= mod
			continue
		}

		if haveKey {
			return Combination{}, fmt.Errorf("second key '%s' in combination '%s' (only one non-modifier key allowed)", part, spec)
		}
		key, ch, err := KeyIdentifierToKey(part)
		if err != nil {
			return Combination{}, fmt.Errorf("error mapping identifier '%s' to key: %s", part, err.Error())
		}
		result.Key, result.Ch = key, ch
		haveKey = true
	}

	if !haveKey {
		return Combination{}, fmt.Errorf("combination '%s' consists only of modifiers", spec)
	}

	return result, nil
}

// ModifierIdentifierToMask converts the given modifier identifier to its
// modifier mask, if it is one.
func ModifierIdentifierToMask(identifier string) (tcell.ModMask, bool) {
	switch strings.ToLower(identifier) {
	case "shift":
		return tcell.ModShift, true
	case "control", "ctrl":
		return tcell.ModCtrl, true
	case "alt":
		return tcell.ModAlt, true
	case "meta", "super", "win":
		return tcell.ModMeta, true
	default:
		return tcell.ModNone, false
	}
}

// KeyIdentifierToKey converts the given key identifier to the appropriate
// key (or an error, if invalid).
// Single characters map to tcell.KeyRune with the lower-cased character.
func KeyIdentifierToKey(identifier string) (tcell.Key, rune, error) {
	if utf8.RuneCountInString(identifier) == 1 {
		r, _ := utf8.DecodeRuneInString(identifier)
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return 0, 0, fmt.Errorf("unprintable character %q", r)
		}
		return tcell.KeyRune, unicode.ToLower(r), nil
	}

	lowered := strings.ToLower(identifier)
	if lowered == "space" {
		return tcell.KeyRune, ' ', nil
	}
	if lowered == "plus" {
		return tcell.KeyRune, '+', nil
	}
	if lowered == "comma" {
		return tcell.KeyRune, ',', nil
	}

	key, ok := keyIdentifiers[lowered]
	if !ok {
		return 0, 0, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, 0, nil
}

var keyIdentifiers = func() map[string]tcell.Key {
	mapping := map[string]tcell.Key{
		"enter":     tcell.KeyEnter,
		"return":    tcell.KeyEnter,
		"tab":       tcell.KeyTab,
		"esc":       tcell.KeyEscape,
		"escape":    tcell.KeyEscape,
		"backspace": tcell.KeyBackspace2,
		"bs":        tcell.KeyBackspace2,
		"delete":    tcell.KeyDelete,
		"del":       tcell.KeyDelete,
		"insert":    tcell.KeyInsert,
		"up":        tcell.KeyUp,
		"down":      tcell.KeyDown,
		"left":      tcell.KeyLeft,
		"right":     tcell.KeyRight,
		"home":      tcell.KeyHome,
		"end":       tcell.KeyEnd,
		"pageup":    tcell.KeyPgUp,
		"pgup":      tcell.KeyPgUp,
		"pagedown":  tcell.KeyPgDn,
		"pgdn":      tcell.KeyPgDn,
		"pause":     tcell.KeyPause,
		"print":     tcell.KeyPrint,
	}
	for i := 0; i < 24; i++ {
		mapping[fmt.Sprintf("f%d", i+1)] = tcell.KeyF1 + tcell.Key(i)
	}
	return mapping
}()

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyPause:      "Pause",
	tcell.KeyPrint:      "Print",
}

// String converts the combination to its canonical specification, which
// ParseCombination accepts again.
// Modifiers are always written in the order Shift, Control, Alt, Meta.
func (c Combination) String() string {
	parts := make([]string, 0, len(modifierOrder)+1)
	for _, mod := range modifierOrder {
		if c.Mods&mod != 0 {
			parts = append(parts, modifierNames[mod])
		}
	}
	parts = append(parts, keyString(c.Key, c.Ch))
	return strings.Join(parts, "+")
}

// Keyspec returns the canonical specification of the combination.
func (c Combination) Keyspec() Keyspec {
	return Keyspec(c.String())
}

func keyString(key tcell.Key, ch rune) string {
	switch {
	case key == tcell.KeyRune && ch == ' ':
		return "Space"
	case key == tcell.KeyRune && ch == '+':
		return "Plus"
	case key == tcell.KeyRune && ch == ',':
		return "Comma"
	case key == tcell.KeyRune:
		return string(ch)
	case key >= tcell.KeyF1 && key <= tcell.KeyF24:
		return fmt.Sprintf("F%d", int(key-tcell.KeyF1)+1)
	}
	if name, ok := keyNames[key]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", int(key))
}
