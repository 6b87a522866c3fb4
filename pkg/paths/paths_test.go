package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotfile-manager/dotfile-manager/pkg/paths"
)

func TestMakeAbs(t *testing.T) {
	base := t.TempDir()

	existing := filepath.Join(base, "bashrc")
	require.NoError(t, os.WriteFile(existing, []byte("export EDITOR=vim\n"), 0644))

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			name:   "relative existing file joins and canonicalizes",
			target: "bashrc",
			want:   mustEval(t, existing),
		},
		{
			name:   "relative missing file joins without canonicalizing",
			target: "vimrc",
			want:   filepath.Join(base, "vimrc"),
		},
		{
			name:   "absolute existing path canonicalizes",
			target: existing,
			want:   mustEval(t, existing),
		},
		{
			name:   "absolute missing path returned as-is",
			target: "/no/such/path/anywhere",
			want:   "/no/such/path/anywhere",
		},
		{
			name:   "absolute missing path is not even cleaned",
			target: "/no/such//dir/../path",
			want:   "/no/such//dir/../path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.MakeAbs(base, tt.target))
		})
	}
}

// Applying MakeAbs to its own output must not change the result.
func TestMakeAbsIdempotent(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "gitconfig")
	require.NoError(t, os.WriteFile(target, []byte("[user]\n"), 0644))

	once := paths.MakeAbs(base, target)
	twice := paths.MakeAbs(base, once)
	assert.Equal(t, once, twice)
	assert.True(t, filepath.IsAbs(once))
}

func TestMakeAbsResolvesSymlinks(t *testing.T) {
	base := t.TempDir()
	real := filepath.Join(base, "real")
	link := filepath.Join(base, "link")
	require.NoError(t, os.WriteFile(real, []byte("x"), 0644))
	require.NoError(t, os.Symlink(real, link))

	assert.Equal(t, mustEval(t, real), paths.MakeAbs(base, "link"))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde with path", "~/dotfiles", filepath.Join(home, "dotfiles")},
		{"other user untouched", "~other/dotfiles", "~other/dotfiles"},
		{"absolute untouched", "/etc/passwd", "/etc/passwd"},
		{"empty untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.path))
		})
	}
}

func TestHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := paths.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestDefaultConfigFile(t *testing.T) {
	got := paths.DefaultConfigFile()
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, filepath.Join("dotfile-manager", "dotfile-manager.toml"),
		filepath.Join(filepath.Base(filepath.Dir(got)), filepath.Base(got)))
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
