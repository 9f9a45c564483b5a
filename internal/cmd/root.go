package cmd

import (
	"fmt"
	"os"

	"github.com/focalhq/cli/pkg/client"
	"github.com/focalhq/cli/pkg/config"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/session"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string

	// sess is hydrated once per run and handed down to every service
	sess *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "focal",
	Short: "Focal CLI - Photo sharing from the terminal",
	Long: `Focal CLI is a command-line interface for the Focal photo
sharing platform. Browse your feed, upload photos with locations
and tagged people, and manage your profile from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Save output format to config
		config.SetString("output.format", outputFmt)

		client.Init()

		var err error
		sess, err = session.Hydrate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/focal/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(photoCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}
