// Package archive implements the raw-log archive directory: Save creates
// root/<hex(id)>.log if absent, never overwriting.
package archive

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// Store writes raw logs under an id-keyed directory, optionally compressing
// them with xz. A Store is safe for concurrent use by multiple goroutines on
// distinct ids; it holds no state beyond its root path and options.
type Store struct {
	root     string
	compress bool
}

// Option configures a Store.
type Option func(*Store)

// WithCompression writes root/<hex(id)>.log.xz (via github.com/ulikunitz/xz)
// instead of a plain root/<hex(id)>.log, still never overwriting an existing
// target of either name.
func WithCompression(enabled bool) Option {
	return func(s *Store) { s.compress = enabled }
}

// New returns a Store rooted at root, creating the directory if needed.
func New(root string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("archive: creating root %q: %w", root, err)
	}

	s := &Store{root: root}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Save writes raw under root/<hex(id)>.log (or .log.xz when the Store
// compresses), returning the path written. It never overwrites an existing
// archive for id; a pre-existing file is treated as success, matching
// save_rip_log's "creates ... if absent" contract.
func (s *Store) Save(id, raw []byte) (string, error) {
	name := hex.EncodeToString(id) + ".log"
	if s.compress {
		name += ".xz"
	}
	path := filepath.Join(s.root, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return path, nil
		}
		return "", fmt.Errorf("archive: creating %q: %w", path, err)
	}
	defer f.Close()

	if !s.compress {
		if _, err := f.Write(raw); err != nil {
			return "", fmt.Errorf("archive: writing %q: %w", path, err)
		}
		return path, nil
	}

	zw, err := xz.NewWriter(f)
	if err != nil {
		return "", fmt.Errorf("archive: creating xz writer for %q: %w", path, err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return "", fmt.Errorf("archive: writing %q: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("archive: closing %q: %w", path, err)
	}

	return path, nil
}
