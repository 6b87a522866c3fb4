package main

// User-facing command descriptions and flag help.
const (
	MsgRootShort = "Declarative dotfile installation via symlinks"
	MsgRootLong  = `dotfile-manager links the files declared in your dotfiles list from a
tracked repository into your home directory. The list lives in the repository
as <basename>.nix, .json, .toml, .yaml, or .yml; the first existing format
wins, in that order.`

	MsgInstallShort = "Link every declared dotfile into place"
	MsgInstallLong  = `Reads the dotfiles list from the configured repository and creates a
symlink for each entry at its installed path. When an install path is already
occupied you are asked before anything is removed; declining aborts the run
and leaves the filesystem untouched.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/dotfile-manager/dotfile-manager.toml)"
)
