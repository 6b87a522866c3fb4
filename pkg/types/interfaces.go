package types

import (
	"io/fs"
)

// FS is the filesystem interface required for install operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Remove deletes a file, symlink, or empty directory. It must refuse
	// to delete a non-empty directory.
	Remove(name string) error
}

// Confirmer asks the user a yes/no question before a destructive operation.
// Production wiring binds it to a terminal prompt; tests bind it to a
// deterministic stub.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}
