package installer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
	"github.com/dotfile-manager/dotfile-manager/pkg/filesystem"
	"github.com/dotfile-manager/dotfile-manager/pkg/installer"
	"github.com/dotfile-manager/dotfile-manager/pkg/testutil"
	"github.com/dotfile-manager/dotfile-manager/pkg/types"
)

func entry(t *testing.T) (types.AbsDotfile, string) {
	t.Helper()
	repo := testutil.TempRepo(t, map[string]string{"vimrc": "set nu\n"})
	home := t.TempDir()
	return types.AbsDotfile{
		Repo:      filepath.Join(repo, "vimrc"),
		Installed: filepath.Join(home, ".vimrc"),
	}, home
}

func TestInstallAbsentTarget(t *testing.T) {
	abs, _ := entry(t)
	confirm := &testutil.StubConfirmer{Answer: false}
	inst := installer.New(filesystem.NewOS(), confirm)

	require.NoError(t, inst.Install(abs))

	target, err := os.Readlink(abs.Installed)
	require.NoError(t, err)
	assert.Equal(t, abs.Repo, target)
	assert.Empty(t, confirm.Prompts, "no conflict, no prompt")
}

func TestInstallConflictAccepted(t *testing.T) {
	abs, _ := entry(t)
	require.NoError(t, os.WriteFile(abs.Installed, []byte("old content"), 0644))

	confirm := &testutil.StubConfirmer{Answer: true}
	inst := installer.New(filesystem.NewOS(), confirm)

	require.NoError(t, inst.Install(abs))

	target, err := os.Readlink(abs.Installed)
	require.NoError(t, err)
	assert.Equal(t, abs.Repo, target)

	require.Len(t, confirm.Prompts, 1)
	assert.Contains(t, confirm.Prompts[0], abs.Installed)
	assert.Contains(t, confirm.Prompts[0], abs.Repo)
}

func TestInstallConflictDeclined(t *testing.T) {
	abs, _ := entry(t)
	require.NoError(t, os.WriteFile(abs.Installed, []byte("precious"), 0600))

	confirm := &testutil.StubConfirmer{Answer: false}
	inst := installer.New(filesystem.NewOS(), confirm)

	err := inst.Install(abs)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	// The declined entry must be untouched, content and mode included.
	info, err := os.Lstat(abs.Installed)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	content, err := os.ReadFile(abs.Installed)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(content))
}

func TestInstallConflictEmptyDirAccepted(t *testing.T) {
	abs, _ := entry(t)
	require.NoError(t, os.Mkdir(abs.Installed, 0755))

	inst := installer.New(filesystem.NewOS(), &testutil.StubConfirmer{Answer: true})
	require.NoError(t, inst.Install(abs))

	target, err := os.Readlink(abs.Installed)
	require.NoError(t, err)
	assert.Equal(t, abs.Repo, target)
}

// A non-empty directory is never removed recursively; the overwrite fails
// instead.
func TestInstallConflictNonEmptyDirFails(t *testing.T) {
	abs, _ := entry(t)
	require.NoError(t, os.Mkdir(abs.Installed, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(abs.Installed, "unrelated"), []byte("keep me"), 0644))

	inst := installer.New(filesystem.NewOS(), &testutil.StubConfirmer{Answer: true})

	err := inst.Install(abs)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRemoveFailed))

	// The directory and its contents survive.
	content, err := os.ReadFile(filepath.Join(abs.Installed, "unrelated"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))
}

// A dangling symlink still occupies the install path and is a conflict, not
// an absent slot.
func TestInstallConflictDanglingSymlink(t *testing.T) {
	abs, home := entry(t)
	require.NoError(t, os.Symlink(filepath.Join(home, "gone"), abs.Installed))

	confirm := &testutil.StubConfirmer{Answer: true}
	inst := installer.New(filesystem.NewOS(), confirm)

	require.NoError(t, inst.Install(abs))
	require.Len(t, confirm.Prompts, 1)

	target, err := os.Readlink(abs.Installed)
	require.NoError(t, err)
	assert.Equal(t, abs.Repo, target)
}

func TestInstallDirectoryRepo(t *testing.T) {
	repo := t.TempDir()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, "nvim", "lua"), 0755))

	abs := types.AbsDotfile{
		Repo:      filepath.Join(repo, "nvim"),
		Installed: filepath.Join(home, ".config", "nvim"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(abs.Installed), 0755))

	inst := installer.New(filesystem.NewOS(), &testutil.StubConfirmer{Answer: false})
	require.NoError(t, inst.Install(abs))

	target, err := os.Readlink(abs.Installed)
	require.NoError(t, err)
	assert.Equal(t, abs.Repo, target)

	info, err := os.Stat(abs.Installed)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
