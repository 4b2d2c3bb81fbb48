package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kallosgym/cms/remote"
)

// FSConfig configures the filesystem backend.
type FSConfig struct {
	BaseDir   string // directory objects are written under
	URLPrefix string // public URL prefix prepended to keys
}

// FSStore writes objects under a base directory and serves them through a
// static URL prefix. Suited to single-node deployments.
type FSStore struct {
	baseDir   string
	urlPrefix string
}

// NewFS creates the base directory when missing and returns the store.
func NewFS(cfg FSConfig) (*FSStore, error) {
	if cfg.BaseDir == "" {
		return nil, errors.New("blob: base directory is required")
	}
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create base directory: %w", err)
	}
	return &FSStore{
		baseDir:   cfg.BaseDir,
		urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/"),
	}, nil
}

var _ remote.ObjectStore = (*FSStore)(nil)

// Put writes the object and returns its public URL.
func (s *FSStore) Put(_ context.Context, key, _ string, r io.Reader) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("blob: create object directory: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("blob: create temp file: %w", err)
	}
	tmp := f.Name()

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("blob: write object: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("blob: close object: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("blob: finalize object: %w", err)
	}

	return s.urlPrefix + "/" + key, nil
}

// Delete removes the object; missing objects are not an error.
func (s *FSStore) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blob: delete object: %w", err)
	}
	return nil
}

// resolve maps a key to a filesystem path, rejecting traversal outside the
// base directory.
func (s *FSStore) resolve(key string) (string, error) {
	if key == "" {
		return "", errors.New("blob: object key is required")
	}
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("blob: invalid object key %q", key)
	}
	return path, nil
}
