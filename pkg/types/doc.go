// Package types defines the shared data types for dotfile-manager: the
// declared and resolved dotfile shapes, the filesystem interface used by the
// installer, and the confirmation capability.
package types
