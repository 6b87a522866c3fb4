// Package config locates and parses the dotfile-manager configuration: the
// location of the dotfile repository and the basename of the dotfiles list
// file inside it.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
	"github.com/dotfile-manager/dotfile-manager/pkg/paths"
)

// Environment variable overrides, applied after file values and defaults.
const (
	// EnvDotfileRepo overrides the dotfile repository location
	EnvDotfileRepo = "DOTFILE_MANAGER_REPO"

	// EnvDotfilesBasename overrides the dotfiles list basename
	EnvDotfilesBasename = "DOTFILE_MANAGER_BASENAME"
)

// Config is the configuration for a dotfile-manager run. It is immutable
// after load and passed through the pipeline rather than held as a global.
type Config struct {
	// DotfileRepo is the directory where dotfiles are stored. Absolute after
	// load; a relative or ~-prefixed value in the config file is interpreted
	// relative to the user's home directory.
	DotfileRepo string `koanf:"dotfile_repo"`

	// DotfilesBasename is the extension-less basename of the dotfiles list
	// file, resolved against DotfileRepo.
	DotfilesBasename string `koanf:"dotfiles_basename"`
}

// recognizedKeys are the only top-level keys a config file may contain.
// Anything else is a parse error rather than silently ignored.
var recognizedKeys = map[string]bool{
	"dotfile_repo":      true,
	"dotfiles_basename": true,
}

// Default computes the fallback configuration: <home>/.dotfiles with list
// basename "dotfiles". Environment overrides still apply.
func Default() (Config, error) {
	return finalize(Config{})
}

// Resolve reads and parses the config file at path. A missing file is
// reported as CONFIG_NOT_FOUND, which callers treat as recoverable (fall
// back to Default); every other failure is fatal. Unrecognized keys in the
// document are a CONFIG_PARSE error.
func Resolve(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, errors.ErrConfigNotFound, "config file not found at %s", path)
		}
		return Config{}, errors.Wrapf(err, errors.ErrConfigRead, "could not stat config file %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "could not parse config file %s", path)
	}

	for _, key := range k.Keys() {
		if !recognizedKeys[key] {
			return Config{}, errors.Newf(errors.ErrConfigParse, "unrecognized key %q in config file %s", key, path)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:      &cfg,
			ErrorUnused: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "could not decode config file %s", path)
	}

	return finalize(cfg)
}

// finalize applies environment overrides, fills defaults, and anchors a
// relative repo path to the home directory.
func finalize(cfg Config) (Config, error) {
	if repo := os.Getenv(EnvDotfileRepo); repo != "" {
		cfg.DotfileRepo = repo
	}
	if basename := os.Getenv(EnvDotfilesBasename); basename != "" {
		cfg.DotfilesBasename = basename
	}

	if cfg.DotfilesBasename == "" {
		cfg.DotfilesBasename = paths.DefaultBasename
	}

	if cfg.DotfileRepo == "" {
		home, err := paths.HomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DotfileRepo = filepath.Join(home, paths.DefaultRepoName)
		return cfg, nil
	}

	cfg.DotfileRepo = paths.ExpandHome(cfg.DotfileRepo)
	if !filepath.IsAbs(cfg.DotfileRepo) {
		home, err := paths.HomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DotfileRepo = filepath.Join(home, cfg.DotfileRepo)
	}
	return cfg, nil
}
