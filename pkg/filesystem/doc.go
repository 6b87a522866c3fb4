// Package filesystem provides filesystem implementations for dotfile-manager.
//
// This package contains implementations of the types.FS interface used by
// the installer.
package filesystem
