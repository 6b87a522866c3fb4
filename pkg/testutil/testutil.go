// Package testutil provides shared helpers for dotfile-manager tests: a
// deterministic Confirmer stub and fixture builders for dotfile
// repositories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// StubConfirmer is a deterministic types.Confirmer for tests. It records
// every prompt it is shown and always returns the configured answer.
type StubConfirmer struct {
	Answer  bool
	Err     error
	Prompts []string
}

// Confirm implements types.Confirmer
func (s *StubConfirmer) Confirm(prompt string) (bool, error) {
	s.Prompts = append(s.Prompts, prompt)
	return s.Answer, s.Err
}

// TempRepo creates a dotfile repository under a temp dir with the given
// files (name -> content) and returns its path.
func TempRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	repo := t.TempDir()
	for name, content := range files {
		path := filepath.Join(repo, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating repo dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing repo file %s: %v", name, err)
		}
	}
	return repo
}

// TempHome creates a temp home directory and points HOME at it for the
// duration of the test.
func TempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
