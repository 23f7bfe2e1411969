package envfile

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pinhooks/internal/core/domain"
)

// fileDigest streams the content of path through xxhash.
func fileDigest(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path is a file handed to the hook
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// replaceFile replaces path with data through a temp file in the same directory.
// The rename only happens while path still has the given digest; otherwise
// ErrEnvFileChanged is returned and path is left alone.
func replaceFile(path string, data []byte, perm os.FileMode, digest uint64) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	current, err := fileDigest(path)
	if err != nil {
		return err
	}
	if current != digest {
		return domain.ErrEnvFileChanged
	}

	return os.Rename(tmpName, path)
}
