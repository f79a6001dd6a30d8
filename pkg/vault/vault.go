package vault

import (
	"os"
	"path/filepath"
)

var _ FS = (*DirVault)(nil)

// DirVault is the default FS implementation rooted at a directory on the
// local file system.
type DirVault struct {
	root string
}

func NewDirVault(root string) *DirVault {
	return &DirVault{root: root}
}

func (v *DirVault) abs(path string) string {
	return filepath.Join(v.root, filepath.FromSlash(path))
}

// Root returns the vault's base directory.
func (v *DirVault) Root() string {
	return v.root
}

// Stat is a wrapper around os.Stat relative to the vault root
func (v *DirVault) Stat(path string) (os.FileInfo, error) {
	return os.Stat(v.abs(path))
}

func (v *DirVault) Exists(path string) bool {
	_, err := v.Stat(path)
	return err == nil
}

// Mkdir creates a single folder. Parents are expected to exist already; the
// resolver creates nested paths segment by segment.
func (v *DirVault) Mkdir(path string) error {
	return os.Mkdir(v.abs(path), 0o755)
}

func (v *DirVault) WriteFile(path string, data []byte) error {
	return os.WriteFile(v.abs(path), data, 0o644)
}
