package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/shade/internal/version"
	"github.com/arthur-debert/shade/pkg/logging"
)

var (
	verbosity int
	rulesPath string

	rootCmd = &cobra.Command{
		Use:   "shade",
		Short: "Relocate namespaces inside merged archives",
		Long: `shade merges compiled-code archives without symbol collisions by
systematically renaming a package prefix to a new one everywhere it
appears: in entry paths, in class names, and in source text that
references the namespace.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	initTemplateFormatting()

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&rulesPath, "rules", "r", "", "Rule file (.toml or .xml); defaults to the XDG config location")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(relocateCmd)
	rootCmd.AddCommand(checkCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shade version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
