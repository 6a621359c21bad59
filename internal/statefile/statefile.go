// Package statefile persists generator snapshots so a sequence can be
// resumed after a restart.
package statefile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nozzle/mt19937"
)

// Perm is the mode given to saved state files.
const Perm os.FileMode = 0o644

// Save writes the generator's state to path. The file is replaced
// atomically: readers see either the previous snapshot or the new one.
func Save(path string, g *mt19937.MT19937) error {
	data, err := g.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("save state %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot written by Save.
func Load(path string) (*mt19937.MT19937, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	g := mt19937.New()
	if err := g.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("load state %s: %w", path, err)
	}
	return g, nil
}

func writeAtomic(path string, data []byte) error {
	// Same directory so the rename never crosses filesystems.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Close after a successful Close only reports an error, which is ignored.
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, Perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	// Renamed into place; nothing left to clean up.
	tmp = nil
	return nil
}
