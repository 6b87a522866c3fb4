// Package installer creates the symlinks that install dotfiles into the
// user environment. Each entry runs through a small state machine: an absent
// install path is linked immediately; an occupied one becomes a conflict
// that the injected Confirmer decides.
package installer

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
	"github.com/dotfile-manager/dotfile-manager/pkg/logging"
	"github.com/dotfile-manager/dotfile-manager/pkg/types"
)

// Installer links resolved dotfiles into place.
type Installer struct {
	fs      types.FS
	confirm types.Confirmer
	logger  zerolog.Logger
}

// New creates an Installer that performs filesystem operations through fs
// and resolves conflicts through confirm.
func New(fs types.FS, confirm types.Confirmer) *Installer {
	return &Installer{
		fs:      fs,
		confirm: confirm,
		logger:  logging.GetLogger("installer"),
	}
}

// Install links entry.Installed to entry.Repo.
//
// When the install path is already occupied (by a file, directory, or
// symlink, dangling ones included) the user is asked whether to overwrite.
// On accept the existing entry is removed and the link created; removal of a
// non-empty directory fails rather than recursing, so an unrelated tree is
// never destroyed. On decline the filesystem is left untouched and
// ALREADY_EXISTS is returned.
//
// There is no rollback between the removal and the link: a crash in between
// leaves the install path absent, which the next run treats as the ordinary
// not-yet-linked state.
func (i *Installer) Install(entry types.AbsDotfile) error {
	_, err := i.fs.Lstat(entry.Installed)
	if err != nil {
		if os.IsNotExist(err) {
			return i.link(entry)
		}
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "could not inspect install path %s", entry.Installed)
	}

	ok, err := i.confirm.Confirm(fmt.Sprintf("Overwrite %s with a link to %s?", entry.Installed, entry.Repo))
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "could not read overwrite confirmation for %s", entry.Installed)
	}
	if !ok {
		i.logger.Info().Str("installed", entry.Installed).Msg("Overwrite declined, leaving entry in place")
		return errors.Newf(errors.ErrAlreadyExists, "link target %s already exists", entry.Installed).
			WithDetail("repo", entry.Repo)
	}

	if err := i.fs.Remove(entry.Installed); err != nil {
		return errors.Wrapf(err, errors.ErrRemoveFailed, "could not remove %s", entry.Installed)
	}
	i.logger.Debug().Str("installed", entry.Installed).Msg("Removed existing entry")

	return i.link(entry)
}

func (i *Installer) link(entry types.AbsDotfile) error {
	if err := i.fs.Symlink(entry.Repo, entry.Installed); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "could not link %s to %s", entry.Installed, entry.Repo)
	}
	i.logger.Info().
		Str("repo", entry.Repo).
		Str("installed", entry.Installed).
		Msg("Linked")
	return nil
}
