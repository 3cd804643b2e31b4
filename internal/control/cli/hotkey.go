package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/gridconf/internal/input"
	"github.com/ja-he/gridconf/internal/model"
)

// HotkeyCommand groups the hotkey subcommands.
type HotkeyCommand struct {
	List         HotkeyListCommand         `command:"list" description:"list all hotkeys with their actions" subcommands-optional:"true"`
	Add          HotkeyAddCommand          `command:"add" description:"add a hotkey" subcommands-optional:"true"`
	Remove       HotkeyRemoveCommand       `command:"remove" description:"remove a hotkey" subcommands-optional:"true"`
	AddAction    HotkeyAddActionCommand    `command:"add-action" description:"add an action to a hotkey" subcommands-optional:"true"`
	RemoveAction HotkeyRemoveActionCommand `command:"remove-action" description:"remove an action from a hotkey" subcommands-optional:"true"`
}

// HotkeyListCommand contains flags for the `hotkey list` command.
type HotkeyListCommand struct {
}

// Execute executes the hotkey list command.
func (command *HotkeyListCommand) Execute(args []string) error {
	c, err := newProvider().Load()
	if err != nil {
		return err
	}
	renderHotkeys(os.Stdout, c.Hotkeys().Hotkeys())
	return nil
}

func renderHotkeys(w io.Writer, hotkeys []model.Hotkey) {
	for i, h := range hotkeys {
		fmt.Fprintf(w, "%d: %s\n", i, h)
		for j, a := range h.Actions {
			fmt.Fprintf(w, "   %d: %s\n", j, a)
		}
	}
}

// HotkeyAddCommand contains flags for the `hotkey add` command.
type HotkeyAddCommand struct {
	Keys    string   `short:"k" long:"keys" description:"the key combination, e.g. 'Control+Alt+Left'" value-name:"<combination>" required:"true"`
	Actions []string `short:"a" long:"action" description:"an action, e.g. 'switchToScreen(laptop)' (repeatable)" value-name:"<action>"`
}

// Execute executes the hotkey add command.
func (command *HotkeyAddCommand) Execute(args []string) error {
	combination, err := input.ParseCombination(input.Keyspec(command.Keys))
	if err != nil {
		return err
	}
	actions, err := parseActions(command.Actions)
	if err != nil {
		return err
	}

	return editConfig(func(c *model.ServerConfig) error {
		index := c.Hotkeys().AddHotkey(model.NewHotkey(combination, actions...))
		log.Info().Int("index", index).Str("keys", combination.String()).Msg("added hotkey")
		return nil
	})
}

func parseActions(specs []string) ([]model.Action, error) {
	var result []model.Action
	for _, spec := range specs {
		action, err := model.ParseAction(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid action '%s' (%w)", spec, err)
		}
		result = append(result, action)
	}
	return result, nil
}

// HotkeyRemoveCommand contains flags for the `hotkey remove` command.
type HotkeyRemoveCommand struct {
	Index int `short:"i" long:"index" description:"the index of the hotkey (see 'hotkey list')" value-name:"<index>" required:"true"`
}

// Execute executes the hotkey remove command.
func (command *HotkeyRemoveCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		next, err := c.Hotkeys().RemoveHotkeyAt(command.Index)
		if err != nil {
			return err
		}
		log.Debug().Int("next", next).Msg("removed hotkey")
		return nil
	})
}

// HotkeyAddActionCommand contains flags for the `hotkey add-action` command.
type HotkeyAddActionCommand struct {
	Index  int    `short:"i" long:"index" description:"the index of the hotkey (see 'hotkey list')" value-name:"<index>" required:"true"`
	Action string `short:"a" long:"action" description:"the action, e.g. 'switchInDirection(left)'" value-name:"<action>" required:"true"`
}

// Execute executes the hotkey add-action command.
func (command *HotkeyAddActionCommand) Execute(args []string) error {
	action, err := model.ParseAction(command.Action)
	if err != nil {
		return err
	}
	return editConfig(func(c *model.ServerConfig) error {
		return c.Hotkeys().AddActionTo(command.Index, action)
	})
}

// HotkeyRemoveActionCommand contains flags for the `hotkey remove-action`
// command.
type HotkeyRemoveActionCommand struct {
	Index       int `short:"i" long:"index" description:"the index of the hotkey" value-name:"<index>" required:"true"`
	ActionIndex int `short:"n" long:"action-index" description:"the index of the action within the hotkey" value-name:"<index>" required:"true"`
}

// Execute executes the hotkey remove-action command.
func (command *HotkeyRemoveActionCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		_, err := c.Hotkeys().RemoveActionAt(command.Index, command.ActionIndex)
		return err
	})
}
