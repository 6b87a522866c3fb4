package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Summary on the terminal, full structural detail in the log.
		log.Error().
			Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Run failed")
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
