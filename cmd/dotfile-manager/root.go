package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotfile-manager/dotfile-manager/internal/version"
	"github.com/dotfile-manager/dotfile-manager/pkg/commands/install"
	"github.com/dotfile-manager/dotfile-manager/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "dotfile-manager",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help and report incorrect usage.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newInstallCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newInstallCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: MsgInstallShort,
		Long:  MsgInstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := install.Run(install.Options{ConfigPath: *configPath})

			// Report what was applied even when a later entry failed.
			if result != nil {
				for _, linked := range result.Linked {
					pterm.Success.Printfln("%s -> %s", linked.Installed, linked.Repo)
				}
			}
			if err != nil {
				return err
			}

			if len(result.Linked) == 0 {
				pterm.Info.Println("Nothing to install")
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dotfile-manager version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
