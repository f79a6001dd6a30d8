// Package vault persists rendered documents into the note vault and decides
// where they land: folder policy, interactive choice, and collision-free
// file naming.
package vault

import "os"

// FS is the narrow file-system surface the vault needs. Paths are
// vault-relative, slash-separated.
type FS interface {
	Exists(path string) bool
	Mkdir(path string) error
	WriteFile(path string, data []byte) error
	Stat(path string) (os.FileInfo, error)
}
