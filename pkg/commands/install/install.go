// Package install implements the install command: resolve configuration,
// load the declared dotfile list, and link every entry into place.
package install

import (
	"github.com/dotfile-manager/dotfile-manager/pkg/config"
	"github.com/dotfile-manager/dotfile-manager/pkg/dotfiles"
	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
	"github.com/dotfile-manager/dotfile-manager/pkg/filesystem"
	"github.com/dotfile-manager/dotfile-manager/pkg/installer"
	"github.com/dotfile-manager/dotfile-manager/pkg/logging"
	"github.com/dotfile-manager/dotfile-manager/pkg/paths"
	"github.com/dotfile-manager/dotfile-manager/pkg/types"
	"github.com/dotfile-manager/dotfile-manager/pkg/ui/confirmations"
)

// Options defines the options for the Install command.
type Options struct {
	// ConfigPath is an explicit config file path. Empty means the default
	// location under the XDG config directory.
	ConfigPath string

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS

	// Confirmer resolves overwrite conflicts. Nil means the interactive
	// console confirmer.
	Confirmer types.Confirmer
}

// Result reports what an install run did.
type Result struct {
	// Config is the configuration the run used
	Config config.Config

	// Linked holds the entries that were linked, in list order
	Linked []types.AbsDotfile
}

// Run executes the install pipeline: config -> list -> resolve -> link, one
// entry at a time in declared order. The first failing entry aborts the
// batch; remaining entries are not attempted. The partial Result is returned
// alongside the error so callers can report what was applied before the
// failure.
func Run(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.install")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	confirm := opts.Confirmer
	if confirm == nil {
		confirm = confirmations.NewConsole()
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = paths.DefaultConfigFile()
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		// A missing config file is the one recoverable config failure:
		// fall back to the computed default.
		if !errors.IsErrorCode(err, errors.ErrConfigNotFound) {
			return nil, err
		}
		log.Debug().Str("path", configPath).Msg("No config file, using defaults")
		cfg, err = config.Default()
		if err != nil {
			return nil, err
		}
	}
	log.Debug().
		Str("repo", cfg.DotfileRepo).
		Str("basename", cfg.DotfilesBasename).
		Msg("Configuration resolved")

	declared, err := dotfiles.Load(cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Int("count", len(declared)).Msg("Dotfiles list loaded")

	home, err := paths.HomeDir()
	if err != nil {
		return nil, err
	}

	inst := installer.New(fs, confirm)
	result := &Result{Config: cfg}
	for _, d := range declared {
		abs := dotfiles.Resolve(d, cfg.DotfileRepo, home)
		if err := inst.Install(abs); err != nil {
			return result, err
		}
		result.Linked = append(result.Linked, abs)
	}

	return result, nil
}
