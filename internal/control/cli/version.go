package cli

import (
	"fmt"
	"io"
	"os"
)

// Set via ldflags, e.g.
// `-X github.com/ja-he/gridconf/internal/control/cli.version=v1.0.0`.
var (
	version = "development"
	hash    = "unknown"
)

// VersionCommand is the command `version`, which prints the build version.
type VersionCommand struct {
	Short bool `short:"s" long:"short" description:"print only the version, without the commit hash"`
}

// Execute executes the version command.
func (command *VersionCommand) Execute(args []string) error {
	writeVersion(os.Stdout, command.Short)
	return nil
}

func writeVersion(w io.Writer, short bool) {
	if short {
		fmt.Fprintln(w, version)
		return
	}
	fmt.Fprintf(w, "gridconf %s (%s)\n", version, hash)
}
