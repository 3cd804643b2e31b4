package providers

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/gridconf/internal/config"
	"github.com/ja-he/gridconf/internal/model"
	"github.com/ja-he/gridconf/internal/storage"
)

// FilesConfigProvider stores a server configuration as a YAML file.
type FilesConfigProvider struct {
	file *fileHandler
}

var _ storage.ConfigProvider = &FilesConfigProvider{}

// NewFilesConfigProvider returns a provider for the config file at the given
// path. The file need not exist yet.
func NewFilesConfigProvider(filename string) *FilesConfigProvider {
	return &FilesConfigProvider{file: newFileHandler(filename)}
}

// Filename returns the path of the config file.
func (p *FilesConfigProvider) Filename() string {
	return p.file.filename
}

// Load reads the config file and constructs the server configuration from
// it, with defaults for anything not in the file.
// A missing file loads the defaults.
func (p *FilesConfigProvider) Load() (*model.ServerConfig, error) {
	data, found, err := p.file.read()
	if err != nil {
		return nil, err
	}
	if !found {
		log.Warn().Str("file", p.file.filename).Msg("config file not found, using defaults")
	}

	configData, err := config.ParseConfigAugmentDefaults(data)
	if err != nil {
		return nil, fmt.Errorf("can't parse config file '%s' (%w)", p.file.filename, err)
	}

	result, err := config.ToServerConfig(configData)
	if err != nil {
		return nil, fmt.Errorf("invalid config file '%s' (%w)", p.file.filename, err)
	}

	log.Debug().
		Str("file", p.file.filename).
		Int("screens", result.Topology().Len()).
		Int("hotkeys", result.Hotkeys().Len()).
		Msg("loaded config")

	return result, nil
}

// Save writes the server configuration to the config file.
func (p *FilesConfigProvider) Save(c *model.ServerConfig) error {
	data, err := config.Marshal(config.FromServerConfig(c))
	if err != nil {
		return err
	}
	if err := p.file.write(data); err != nil {
		return err
	}
	log.Info().Str("file", p.file.filename).Msg("saved config")
	return nil
}
