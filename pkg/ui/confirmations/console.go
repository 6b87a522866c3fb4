// Package confirmations provides UI implementations for confirmation
// prompts.
package confirmations

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ConsoleConfirmer implements types.Confirmer with an interactive terminal
// prompt. Outside a terminal it declines instead of blocking, so a piped or
// scripted run never destroys an existing entry and never hangs waiting for
// input that cannot arrive.
type ConsoleConfirmer struct{}

// NewConsole creates a new console confirmer
func NewConsole() *ConsoleConfirmer {
	return &ConsoleConfirmer{}
}

// Confirm asks the user a yes/no question, defaulting to no.
func (c *ConsoleConfirmer) Confirm(prompt string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false, nil
	}
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(prompt)
}
