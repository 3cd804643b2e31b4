package cli

import (
	"github.com/ja-he/gridconf/internal/model"
)

// PlaceCommand contains flags for the `place` command line command.
// Placing a server screen also makes its name the configured server name.
type PlaceCommand struct {
	Name   string `short:"n" long:"name" description:"the name of the new screen" value-name:"<name>" required:"true"`
	Column int    `short:"x" long:"column" description:"the grid column to place the screen in" value-name:"<column>" required:"true"`
	Row    int    `short:"y" long:"row" description:"the grid row to place the screen in" value-name:"<row>" required:"true"`
	Server bool   `short:"s" long:"server" description:"make the new screen the server"`
}

// Execute executes the place command.
func (command *PlaceCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		screen := model.NewScreen(command.Name)
		screen.IsServer = command.Server
		if err := c.Topology().PlaceScreen(screen, command.Column, command.Row); err != nil {
			return err
		}
		if command.Server {
			c.SetServerName(command.Name)
		}
		return nil
	})
}

// RemoveCommand contains flags for the `remove` command line command.
type RemoveCommand struct {
	Name string `short:"n" long:"name" description:"the name of the screen to remove" value-name:"<name>" required:"true"`
}

// Execute executes the remove command.
func (command *RemoveCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		return c.Topology().RemoveScreen(command.Name)
	})
}

// MoveCommand contains flags for the `move` command line command.
type MoveCommand struct {
	Name   string `short:"n" long:"name" description:"the name of the screen to move" value-name:"<name>" required:"true"`
	Column int    `short:"x" long:"column" description:"the grid column to move the screen to" value-name:"<column>" required:"true"`
	Row    int    `short:"y" long:"row" description:"the grid row to move the screen to" value-name:"<row>" required:"true"`
}

// Execute executes the move command.
func (command *MoveCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		return c.Topology().MoveScreen(command.Name, command.Column, command.Row)
	})
}

// RenameCommand contains flags for the `rename` command line command.
//
// Renaming the server screen also changes the configured server name, so the
// server does not get replaced by a default one on the next load.
type RenameCommand struct {
	Name string `short:"n" long:"name" description:"the current name of the screen" value-name:"<name>" required:"true"`
	To   string `short:"t" long:"to" description:"the new name of the screen" value-name:"<name>" required:"true"`
}

// Execute executes the rename command.
func (command *RenameCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		if err := c.Topology().RenameScreen(command.Name, command.To); err != nil {
			return err
		}
		if c.ServerName() == command.Name {
			c.SetServerName(command.To)
		}
		return nil
	})
}

// MarkServerCommand contains flags for the `mark-server` command line command.
type MarkServerCommand struct {
	Name string `short:"n" long:"name" description:"the name of the screen to make the server" value-name:"<name>" required:"true"`
}

// Execute executes the mark-server command.
func (command *MarkServerCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		if err := c.Topology().MarkAsServer(command.Name); err != nil {
			return err
		}
		c.SetServerName(command.Name)
		return nil
	})
}

// ResizeCommand contains flags for the `resize` command line command.
type ResizeCommand struct {
	Columns int `long:"columns" description:"the new number of grid columns" value-name:"<n>" required:"true"`
	Rows    int `long:"rows" description:"the new number of grid rows" value-name:"<n>" required:"true"`
}

// Execute executes the resize command.
func (command *ResizeCommand) Execute(args []string) error {
	return editConfig(func(c *model.ServerConfig) error {
		return c.Topology().Resize(command.Columns, command.Rows)
	})
}
