package cache

import (
	"context"
	"docbook/cmd/internal/domain/entity"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileCache stores the collection in <dir>/<key>.json.
type FileCache struct {
	mu   sync.Mutex
	path string
}

func NewFileCache(dir, key string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create dir %q: %w", dir, err)
	}
	return &FileCache{path: filepath.Join(dir, key+".json")}, nil
}

func (f *FileCache) Path() string {
	return f.path
}

func (f *FileCache) Load(_ context.Context) ([]entity.Appointment, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: read %q: %w", f.path, err)
	}

	appts, err := decode(data)
	if err != nil {
		return nil, false, err
	}
	return appts, true, nil
}

// Save writes to a temp file and renames it over the old one so a crash
// never leaves a half-written collection behind.
func (f *FileCache) Save(_ context.Context, appts []entity.Appointment) error {
	data, err := encode(appts)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache: write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("cache: replace %q: %w", f.path, err)
	}
	return nil
}
