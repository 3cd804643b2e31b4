package providers

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sync"
)

type fileHandler struct {
	mutex sync.Mutex

	filename string
}

func newFileHandler(filename string) *fileHandler {
	return &fileHandler{filename: filename}
}

// read returns the file contents, or nil data if the file does not exist.
func (h *fileHandler) read() ([]byte, bool, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := os.ReadFile(h.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("could not read file '%s' from disk (%w)", h.filename, err)
	}
	return data, true, nil
}

// write replaces the file contents.
// The data is written to a temporary file next to the target first and then
// renamed over it, so the target is never left half-written.
func (h *fileHandler) write(data []byte) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	dir := path.Dir(h.filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory '%s' (%w)", dir, err)
	}

	f, err := os.CreateTemp(dir, path.Base(h.filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file in '%s' (%w)", dir, err)
	}
	tmpName := f.Name()

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, 0644)
	}
	if err == nil {
		err = os.Rename(tmpName, h.filename)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("could not write file '%s' (%w)", h.filename, err)
	}

	return nil
}
