package storage

import (
	"os"

	"github.com/ja-he/gridconf/internal/model"
)

// ConfigProvider is the abstracted persistence of a server configuration,
// which can be implemented over various storage systems.
//
// Load returns defaults (not an error) if nothing has been stored yet.
type ConfigProvider interface {
	Load() (*model.ServerConfig, error)
	Save(*model.ServerConfig) error
}

// OSPathChecker checks for file existence on the local filesystem.
type OSPathChecker struct{}

// Exists returns whether a regular file (or a link to one) exists at the path.
func (OSPathChecker) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

var _ model.PathChecker = OSPathChecker{}
