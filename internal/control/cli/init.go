package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/gridconf/internal/model"
)

// InitCommand contains flags for the `init` command line command, for
// `go-flags` to parse command line args into.
type InitCommand struct {
	Columns    int    `long:"columns" description:"the number of grid columns" value-name:"<n>" default:"5"`
	Rows       int    `long:"rows" description:"the number of grid rows" value-name:"<n>" default:"3"`
	ServerName string `short:"n" long:"server-name" description:"the name of the server screen (default: the hostname)" value-name:"<name>"`
	Force      bool   `short:"f" long:"force" description:"overwrite an existing config file"`
}

// Execute executes the init command.
func (command *InitCommand) Execute(args []string) error {
	provider := newProvider()
	if _, err := os.Stat(provider.Filename()); err == nil && !command.Force {
		return fmt.Errorf("config file '%s' exists (use --force to overwrite)", provider.Filename())
	}

	serverName := command.ServerName
	if serverName == "" {
		hostname, err := os.Hostname()
		if err != nil {
			log.Warn().Err(err).Msgf("could not determine hostname, using '%s'", model.DefaultServerName)
		}
		serverName = hostname
	}

	c, err := model.New(command.Columns, command.Rows, serverName)
	if err != nil {
		return err
	}
	c.EnsureServer()

	return provider.Save(c)
}
