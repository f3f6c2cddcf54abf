package adapter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	m "github.com/kongweiying2/previewjs/internal/model"
)

const snapshotFormatVersion = 1

// SnapshotStore persists the canonical examples of a schema so later runs
// can detect drift.
type SnapshotStore interface {
	// LoadSnapshots returns the stored examples keyed by type name. A missing
	// file yields an empty set.
	LoadSnapshots(ctx context.Context, path m.Path) (map[string]string, error)

	// SaveSnapshots replaces the stored examples.
	SaveSnapshots(ctx context.Context, path m.Path, snapshots map[string]string) error
}

type snapshotFile struct {
	Version   int               `yaml:"version"`
	Snapshots map[string]string `yaml:"snapshots"`
}

// LocalSnapshotStore stores snapshots in a YAML file.
type LocalSnapshotStore struct{}

// NewLocalSnapshotStore constructs a LocalSnapshotStore.
func NewLocalSnapshotStore() *LocalSnapshotStore {
	return &LocalSnapshotStore{}
}

// LoadSnapshots implements SnapshotStore.
func (s *LocalSnapshotStore) LoadSnapshots(ctx context.Context, path m.Path) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "read snapshots %s", path)
	}

	var file snapshotFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Wrapf(err, "decode snapshots %s", path)
	}

	if file.Version != 0 && file.Version != snapshotFormatVersion {
		return nil, errors.WithHint(
			errors.Newf("unsupported snapshot version %d in %s", file.Version, path),
			"regenerate the file with `previewgen snapshot --update`",
		)
	}

	if file.Snapshots == nil {
		file.Snapshots = map[string]string{}
	}

	return file.Snapshots, nil
}

// SaveSnapshots implements SnapshotStore.
func (s *LocalSnapshotStore) SaveSnapshots(ctx context.Context, path m.Path, snapshots map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := yaml.Marshal(snapshotFile{Version: snapshotFormatVersion, Snapshots: snapshots})
	if err != nil {
		return errors.Wrap(err, "encode snapshots")
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrapf(err, "create snapshot directory %s", dir)
		}
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		return errors.Wrapf(err, "write snapshots %s", path)
	}

	return nil
}
