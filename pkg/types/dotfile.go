package types

// Dotfile is a single declared entry from a dotfiles list, before path
// resolution.
type Dotfile struct {
	// Repo is the dotfile's path relative to the dotfile repository.
	Repo string

	// Installed is the dotfile's path relative to the user's home directory.
	// Empty means "same as Repo".
	Installed string
}

// InstalledPath returns the declared install location, falling back to the
// repository path when none was given.
func (d Dotfile) InstalledPath() string {
	if d.Installed != "" {
		return d.Installed
	}
	return d.Repo
}

// AbsDotfile is a Dotfile resolved to absolute paths. Both fields are
// canonical when the target exists on disk, and a syntactically joined
// absolute path otherwise (first-time installs link to paths that do not
// exist yet).
type AbsDotfile struct {
	// Repo is the dotfile's absolute path in the dotfile repository.
	Repo string

	// Installed is the dotfile's absolute path in the user environment.
	Installed string
}
