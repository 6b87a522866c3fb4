package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("DOTFILE_MANAGER_REPO", "")
	t.Setenv("DOTFILE_MANAGER_BASENAME", "")
	return home
}

func TestRootWithoutCommandFails(t *testing.T) {
	testEnv(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestInstallCommand(t *testing.T) {
	home := testEnv(t)

	repo := filepath.Join(home, ".dotfiles")
	require.NoError(t, os.MkdirAll(repo, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "vimrc"), []byte("set nu\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "dotfiles.json"),
		[]byte(`{"dotfiles": [{"repo": "vimrc", "installed": ".vimrc"}]}`), 0644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"install"})

	require.NoError(t, cmd.Execute())

	target, err := os.Readlink(filepath.Join(home, ".vimrc"))
	require.NoError(t, err)
	assert.Contains(t, target, "vimrc")
}

func TestInstallCommandRejectsArgs(t *testing.T) {
	testEnv(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"install", "extra"})

	require.Error(t, cmd.Execute())
}
