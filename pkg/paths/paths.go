// Package paths provides centralized path handling for dotfile-manager:
// home directory discovery, XDG config locations, and the best-effort
// absolute path resolution used on dotfile entries.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// ConfigDirName is the directory name for dotfile-manager's own config
	ConfigDirName = "dotfile-manager"

	// ConfigFileName is the name of the config file
	ConfigFileName = "dotfile-manager.toml"

	// DefaultRepoName is the default dotfile repository name, under home
	DefaultRepoName = ".dotfiles"

	// DefaultBasename is the default basename of the dotfiles list file
	DefaultBasename = "dotfiles"
)

// DefaultConfigFile returns the advisory location of the config file,
// <XDG config dir>/dotfile-manager/dotfile-manager.toml. Callers decide what
// to do when no file exists there; the resolver itself does not enforce this
// path.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, ConfigDirName, ConfigFileName)
}

// HomeDir returns the user's home directory, trying the HOME environment
// variable as a fallback.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrap(err, errors.ErrNoHome, "home directory not found")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := HomeDir()
		if err != nil {
			// Can't expand, return as-is
			return path
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// MakeAbs resolves target to a best-effort absolute path. An absolute target
// is canonicalized when possible; a relative target is joined onto base
// first. Canonicalization failure is not an error: dotfiles are often
// declared before the corresponding filesystem entry exists, so the
// unresolved path is returned verbatim instead.
func MakeAbs(base, target string) string {
	if filepath.IsAbs(target) {
		if resolved, err := filepath.EvalSymlinks(target); err == nil {
			return resolved
		}
		return target
	}

	joined := filepath.Join(base, target)
	if resolved, err := filepath.EvalSymlinks(joined); err == nil {
		return resolved
	}
	return joined
}
