// Package cli provides the command-line interface for gridconf.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	ConfigFile    string `short:"c" long:"config" description:"the config file to operate on (default: ${GRIDCONF_HOME}/config.yaml)" value-name:"<file>"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs go to stderr)" value-name:"<file>"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	Debug         bool   `long:"debug" description:"enable debug logging"`

	ValidateCommand   ValidateCommand   `command:"validate" description:"check the configuration for problems" subcommands-optional:"true"`
	ShowCommand       ShowCommand       `command:"show" description:"print the screen grid" subcommands-optional:"true"`
	LinksCommand      LinksCommand      `command:"links" description:"print the links between neighboring screens" subcommands-optional:"true"`
	InitCommand       InitCommand       `command:"init" description:"write a default configuration" subcommands-optional:"true"`
	PlaceCommand      PlaceCommand      `command:"place" description:"place a new screen" subcommands-optional:"true"`
	RemoveCommand     RemoveCommand     `command:"remove" description:"remove a screen" subcommands-optional:"true"`
	MoveCommand       MoveCommand       `command:"move" description:"move a screen to another cell" subcommands-optional:"true"`
	RenameCommand     RenameCommand     `command:"rename" description:"rename a screen" subcommands-optional:"true"`
	MarkServerCommand MarkServerCommand `command:"mark-server" description:"make a screen the server" subcommands-optional:"true"`
	ResizeCommand     ResizeCommand     `command:"resize" description:"change the grid size" subcommands-optional:"true"`
	HotkeyCommand     HotkeyCommand     `command:"hotkey" description:"list and edit hotkeys"`
	VersionCommand    VersionCommand    `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
