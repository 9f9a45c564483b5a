package cmd

import (
	"github.com/focalhq/cli/pkg/service"
	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search commands",
}

var searchUsersCmd = &cobra.Command{
	Use:   "users <query>",
	Short: "Search for users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewSearchService(sess).SearchUsers(args[0], searchLimit)
	},
}

var searchPlacesCmd = &cobra.Command{
	Use:   "places <query>",
	Short: "Search for places",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewSearchService(sess).SearchPlaces(args[0], searchLimit)
	},
}

func init() {
	searchCmd.PersistentFlags().IntVarP(&searchLimit, "limit", "n", 10, "Maximum results")

	searchCmd.AddCommand(searchUsersCmd)
	searchCmd.AddCommand(searchPlacesCmd)
}
