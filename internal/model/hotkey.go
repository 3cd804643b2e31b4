package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ja-he/gridconf/internal/input"
)

// HotkeyID identifies a hotkey regardless of its position in the table.
type HotkeyID = uuid.UUID

// Hotkey is a key combination bound to an ordered list of actions.
type Hotkey struct {
	ID          HotkeyID
	Combination input.Combination
	Actions     []Action
}

// NewHotkey returns a hotkey with a fresh ID.
func NewHotkey(combination input.Combination, actions ...Action) Hotkey {
	return Hotkey{ID: uuid.New(), Combination: combination, Actions: actions}
}

// String renders the hotkey trigger, e.g. "keystroke(Control+Alt+Left)".
func (h Hotkey) String() string {
	return fmt.Sprintf("keystroke(%s)", h.Combination)
}

func (h Hotkey) clone() Hotkey {
	c := h
	c.Actions = make([]Action, len(h.Actions))
	for i := range h.Actions {
		c.Actions[i] = h.Actions[i].clone()
	}
	return c
}

// HotkeyTable is an ordered collection of hotkeys.
//
// Insertion order is kept and is significant. Indices are only valid until
// the next call that adds or removes a hotkey; callers holding on to a
// selection across such a call must re-resolve it, either by the ID (see
// IndexOf) or by the index returned from the removal.
type HotkeyTable struct {
	hotkeys []Hotkey
}

// NewHotkeyTable returns an empty table.
func NewHotkeyTable() *HotkeyTable {
	return &HotkeyTable{}
}

// Len returns the number of hotkeys.
func (t *HotkeyTable) Len() int { return len(t.hotkeys) }

// AddHotkey appends a copy of the hotkey and returns its index.
// A hotkey without ID is given one.
// Duplicate combinations are accepted (see ServerConfig.Validate).
func (t *HotkeyTable) AddHotkey(h Hotkey) int {
	added := h.clone()
	if added.ID == uuid.Nil {
		added.ID = uuid.New()
	}
	t.hotkeys = append(t.hotkeys, added)
	return len(t.hotkeys) - 1
}

// RemoveHotkeyAt removes the hotkey at the given index, shifting all
// following hotkeys down by one.
// It returns the index that a selection should move to: the hotkey that
// followed the removed one, else the new last hotkey, else -1 if the table
// is now empty.
func (t *HotkeyTable) RemoveHotkeyAt(index int) (int, error) {
	if err := t.checkHotkeyIndex(index); err != nil {
		return -1, err
	}
	t.hotkeys = append(t.hotkeys[:index], t.hotkeys[index+1:]...)
	return nextSelection(index, len(t.hotkeys)), nil
}

// Hotkey returns a copy of the hotkey at the given index.
func (t *HotkeyTable) Hotkey(index int) (Hotkey, error) {
	if err := t.checkHotkeyIndex(index); err != nil {
		return Hotkey{}, err
	}
	return t.hotkeys[index].clone(), nil
}

// Hotkeys returns copies of all hotkeys in order.
func (t *HotkeyTable) Hotkeys() []Hotkey {
	result := make([]Hotkey, len(t.hotkeys))
	for i := range t.hotkeys {
		result[i] = t.hotkeys[i].clone()
	}
	return result
}

// SetCombination changes the combination of the hotkey at the given index.
func (t *HotkeyTable) SetCombination(index int, combination input.Combination) error {
	if err := t.checkHotkeyIndex(index); err != nil {
		return err
	}
	t.hotkeys[index].Combination = combination
	return nil
}

// IndexOf returns the current index of the hotkey with the given ID, or -1.
func (t *HotkeyTable) IndexOf(id HotkeyID) int {
	for i := range t.hotkeys {
		if t.hotkeys[i].ID == id {
			return i
		}
	}
	return -1
}

// ClampIndex clamps a possibly stale index into the valid range, returning
// -1 for an empty table.
func (t *HotkeyTable) ClampIndex(index int) int {
	switch {
	case len(t.hotkeys) == 0:
		return -1
	case index < 0:
		return 0
	case index >= len(t.hotkeys):
		return len(t.hotkeys) - 1
	default:
		return index
	}
}

// AddActionTo appends the action to the hotkey at the given index.
func (t *HotkeyTable) AddActionTo(hotkeyIndex int, a Action) error {
	if err := t.checkHotkeyIndex(hotkeyIndex); err != nil {
		return err
	}
	t.hotkeys[hotkeyIndex].Actions = append(t.hotkeys[hotkeyIndex].Actions, a.clone())
	return nil
}

// ReplaceActionAt replaces an action of the hotkey at the given index.
func (t *HotkeyTable) ReplaceActionAt(hotkeyIndex, actionIndex int, a Action) error {
	if err := t.checkActionIndex(hotkeyIndex, actionIndex); err != nil {
		return err
	}
	t.hotkeys[hotkeyIndex].Actions[actionIndex] = a.clone()
	return nil
}

// RemoveActionAt removes an action of the hotkey at the given index.
// Like RemoveHotkeyAt, it returns the action index a selection should move
// to.
func (t *HotkeyTable) RemoveActionAt(hotkeyIndex, actionIndex int) (int, error) {
	if err := t.checkActionIndex(hotkeyIndex, actionIndex); err != nil {
		return -1, err
	}
	h := &t.hotkeys[hotkeyIndex]
	h.Actions = append(h.Actions[:actionIndex], h.Actions[actionIndex+1:]...)
	return nextSelection(actionIndex, len(h.Actions)), nil
}

func (t *HotkeyTable) checkHotkeyIndex(index int) error {
	if index < 0 || index >= len(t.hotkeys) {
		return fmt.Errorf("hotkey index %d, have %d (%w)", index, len(t.hotkeys), ErrIndexOutOfRange)
	}
	return nil
}

func (t *HotkeyTable) checkActionIndex(hotkeyIndex, actionIndex int) error {
	if err := t.checkHotkeyIndex(hotkeyIndex); err != nil {
		return err
	}
	n := len(t.hotkeys[hotkeyIndex].Actions)
	if actionIndex < 0 || actionIndex >= n {
		return fmt.Errorf("action index %d of hotkey %d, have %d (%w)", actionIndex, hotkeyIndex, n, ErrIndexOutOfRange)
	}
	return nil
}

func (t *HotkeyTable) clone() *HotkeyTable {
	return &HotkeyTable{hotkeys: t.Hotkeys()}
}

// nextSelection is the index to select after removing the element at
// removed from a list that now has remaining elements.
func nextSelection(removed, remaining int) int {
	switch {
	case remaining == 0:
		return -1
	case removed < remaining:
		return removed
	default:
		return remaining - 1
	}
}
