// Package dotfiles discovers, parses, and resolves the user's dotfiles list.
// The list lives at <dotfile_repo>/<basename>.<ext> in one of several
// formats; the first existing candidate wins, scanned in the fixed order
// nix, json, toml, yaml, yml.
package dotfiles

import (
	"os"
	"path/filepath"

	"github.com/dotfile-manager/dotfile-manager/pkg/config"
	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
	"github.com/dotfile-manager/dotfile-manager/pkg/logging"
	"github.com/dotfile-manager/dotfile-manager/pkg/paths"
	"github.com/dotfile-manager/dotfile-manager/pkg/types"
)

// Load locates the dotfiles list for cfg and parses it into normalized
// entries. Returns DOTFILES_NONE_FOUND when no candidate file exists.
func Load(cfg config.Config) ([]types.Dotfile, error) {
	logger := logging.GetLogger("dotfiles")

	for _, src := range sources {
		for _, ext := range src.extensions() {
			path := filepath.Join(cfg.DotfileRepo, cfg.DotfilesBasename+"."+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			logger.Debug().
				Str("file", path).
				Str("format", src.name()).
				Msg("Loading dotfiles list")
			return src.load(path)
		}
	}

	return nil, errors.Newf(errors.ErrDotfilesNoneFound, "no dotfiles lists found under %s", cfg.DotfileRepo).
		WithDetail("basename", cfg.DotfilesBasename)
}

// Resolve converts a declared entry to absolute paths: the repo side against
// the dotfile repository, the installed side against the home directory.
// Both resolutions are independent and best-effort (see paths.MakeAbs).
func Resolve(d types.Dotfile, repoRoot, home string) types.AbsDotfile {
	return types.AbsDotfile{
		Repo:      paths.MakeAbs(repoRoot, d.Repo),
		Installed: paths.MakeAbs(home, d.InstalledPath()),
	}
}
