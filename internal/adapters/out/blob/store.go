// Package blob contains a filesystem implementation of the BlobStore port.
// Proof of delivery artifacts are written under a root directory; the
// returned reference is the path relative to that root.
package blob

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"courier/internal/pkg/errs"
)

// FileBlobStore stores blobs as plain files under a root directory.
type FileBlobStore struct {
	root string
}

// NewFileBlobStore creates a file-backed blob store rooted at dir. The
// directory is created if it does not exist.
func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBlobStore{root: dir}, nil
}

// Put stores data under name and returns name as the reference. Intermediate
// directories are created as needed.
func (s *FileBlobStore) Put(_ context.Context, name string, data []byte) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return name, nil
}

// Get retrieves a blob by the reference returned from Put.
func (s *FileBlobStore) Get(_ context.Context, ref string) ([]byte, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundError("blob", ref)
		}
		return nil, err
	}

	return data, nil
}

// resolve maps a reference to an absolute path and rejects references that
// would escape the root.
func (s *FileBlobStore) resolve(name string) (string, error) {
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}

	cleaned := filepath.Clean(name)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", errs.NewValueIsInvalidError("name")
	}

	return filepath.Join(s.root, cleaned), nil
}
