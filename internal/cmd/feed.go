package cmd

import (
	"github.com/focalhq/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	feedPage     int
	feedPageSize int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse your photo feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewFeedService(sess).ViewFeed(feedPage, feedPageSize)
	},
}

func init() {
	feedCmd.Flags().IntVarP(&feedPage, "page", "p", 1, "Page number")
	feedCmd.Flags().IntVarP(&feedPageSize, "page-size", "n", 10, "Photos per page")
}
