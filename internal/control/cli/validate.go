package cli

import (
	"fmt"
	"os"

	"github.com/ja-he/gridconf/internal/model"
	"github.com/ja-he/gridconf/internal/storage"
)

// ValidateCommand contains flags for the `validate` command line command, for
// `go-flags` to parse command line args into.
type ValidateCommand struct {
	Strict bool `short:"s" long:"strict" description:"treat warnings as errors"`
}

// Execute executes the validate command.
// (This gets called by `go-flags` when `validate` is provided on the command
// line)
func (command *ValidateCommand) Execute(args []string) error {
	c, err := newProvider().Load()
	if err != nil {
		return err
	}

	issues := c.Validate(storage.OSPathChecker{})
	for _, issue := range issues {
		fmt.Fprintln(os.Stdout, issue.String())
	}

	failed := model.HasErrors(issues) || (command.Strict && len(issues) > 0)
	if failed {
		return fmt.Errorf("configuration '%s' has %d issue(s)", configFilePath(), len(issues))
	}
	if len(issues) == 0 {
		fmt.Println("ok")
	}
	return nil
}
