package cmd

import (
	"github.com/focalhq/cli/pkg/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile commands",
	Long:  "View and edit user profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show [username]",
	Short: "Display a profile (yours when no username is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := ""
		if len(args) > 0 {
			username = args[0]
		}
		return service.NewProfileService(sess).ViewProfile(username)
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile interactively",
	Long: `Update your display name, bio and location. The location
prompt autocompletes place names; empty answers keep the
current value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService(sess).EditProfile()
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
}
