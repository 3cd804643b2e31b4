package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/gridconf/internal/model"
	"github.com/ja-he/gridconf/internal/storage"
	"github.com/ja-he/gridconf/internal/storage/providers"
)

// HandleCommand prepares the environment (.env file, logging) from the
// parsed options and then executes the command.
// It is meant to be used as the go-flags parser's CommandHandler.
func HandleCommand(command flags.Commander, args []string) error {
	if command == nil {
		return nil
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	if err := setUpLogging(); err != nil {
		return err
	}

	return command.Execute(args)
}

func setUpLogging() error {
	if Opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if Opts.LogOutputFile == "" {
		return nil
	}

	file, err := os.OpenFile(Opts.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open file '%s' for logging (%w)", Opts.LogOutputFile, err)
	}
	var fileLogger io.Writer
	if Opts.LogPretty {
		fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
	} else {
		fileLogger = file
	}
	log.Logger = zerolog.New(fileLogger).With().Timestamp().Caller().Logger()

	return nil
}

// homeDir returns the gridconf home directory, '${GRIDCONF_HOME}' or, if that
// is not set, '${HOME}/.config/gridconf'.
func homeDir() string {
	gridconfHome := os.Getenv("GRIDCONF_HOME")
	if gridconfHome == "" {
		return os.Getenv("HOME") + "/.config/gridconf"
	}
	return strings.TrimRight(gridconfHome, "/")
}

func configFilePath() string {
	if Opts.ConfigFile != "" {
		return Opts.ConfigFile
	}
	return path.Join(homeDir(), "config.yaml")
}

func newProvider() *providers.FilesConfigProvider {
	return providers.NewFilesConfigProvider(configFilePath())
}

// editConfig loads the configuration, applies the edit and, if that
// succeeded, saves it again.
// Issues the edit leaves behind are logged but do not prevent saving, so a
// configuration can be built up over several edits.
func editConfig(edit func(*model.ServerConfig) error) error {
	provider := newProvider()
	c, err := provider.Load()
	if err != nil {
		return err
	}

	if err := edit(c); err != nil {
		return err
	}

	for _, issue := range c.Validate(storage.OSPathChecker{}) {
		log.Warn().Str("code", string(issue.Code)).Str("severity", issue.Severity.String()).Msg(issue.Message)
	}

	return provider.Save(c)
}
