package config

import "github.com/ja-he/gridconf/internal/model"

// Default returns the default configuration: an empty default-sized grid for
// the default server, clipboard sharing on with the default limit, and
// everything else off.
func Default() Config {
	clipboardSharing := true
	clipboardSizeLimit := model.DefaultClipboardSizeLimitBytes
	return Config{
		ServerName: model.DefaultServerName,
		Grid: Grid{
			Columns: model.DefaultColumns,
			Rows:    model.DefaultRows,
		},
		Options: Options{
			ClipboardSharing:        &clipboardSharing,
			ClipboardSizeLimitBytes: &clipboardSizeLimit,
		},
	}
}
