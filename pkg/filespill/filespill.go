// Package filespill spills a stream of gob-encodable records to a temporary
// file so large batches never have to be held in memory.
package filespill

import (
	"encoding/gob"
	"log/slog"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
)

const (
	defaultPattern = "spill-*.gob"
	dirPerm        = 0o750
)

// FileSpill is an append-only on-disk list of items of type T.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(f func(index uint64, item T) error) error
	Close() error
	Remove() error
}

// Option configures NewFileSpill.
type Option func(*config)

type config struct {
	dir     string
	pattern string
}

// WithDir places the spill file in dir instead of the system temp directory.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithPattern sets the os.CreateTemp pattern of the spill file name.
func WithPattern(pattern string) Option {
	return func(c *config) {
		c.pattern = pattern
	}
}

type fileSpill[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewFileSpill creates a FileSpill backed by a fresh temporary file.
func NewFileSpill[T any](options ...Option) (FileSpill[T], error) {
	cfg := config{dir: os.TempDir(), pattern: defaultPattern}
	for _, option := range options {
		option(&cfg)
	}

	if err := os.MkdirAll(cfg.dir, dirPerm); err != nil {
		slog.Error("failed to create spill directory", "path", cfg.dir, "error", err)
		return nil, errors.Wrapf(err, "create spill directory %s", cfg.dir)
	}

	file, err := os.CreateTemp(cfg.dir, cfg.pattern)
	if err != nil {
		slog.Error("failed to create spill file", "path", cfg.dir, "error", err)
		return nil, errors.Wrap(err, "create spill file")
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append implements FileSpill.
func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return errors.Newf("append to closed spill %s", f.path)
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return errors.Wrapf(err, "encode item %d", f.length)
	}

	f.length++

	return nil
}

// Path implements FileSpill.
func (f *fileSpill[T]) Path() string {
	return f.path
}

// Len implements FileSpill.
func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range implements FileSpill. Items are decoded in append order; an error
// from fn stops the iteration and is returned as is.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		return errors.Wrapf(err, "open spill %s", f.path)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", f.path, "index", i, "error", err)
			return errors.Wrapf(err, "decode item %d", i)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill. The data stays readable through Range.
func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil

	if err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return errors.Wrapf(err, "close spill %s", f.path)
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}

// Remove closes the spill and deletes its file.
func (f *fileSpill[T]) Remove() error {
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "remove spill %s", f.path)
	}

	return nil
}
