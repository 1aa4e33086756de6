package rename

import "os"

// FS is the filesystem surface the executor needs: performing one
// rename and checking whether a name is already taken. Implementations
// operate on full paths supplied by the executor.
type FS interface {
	Rename(oldPath, newPath string) error
	Exists(path string) bool
}

// OSFS implements FS with real filesystem calls.
type OSFS struct{}

// Rename renames (moves) oldPath to newPath via the rename syscall.
func (OSFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Exists reports whether any entry occupies path. Lstat is used so a
// dangling symlink still counts as an occupied name.
func (OSFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
