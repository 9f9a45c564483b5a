package cmd

import (
	"github.com/focalhq/cli/pkg/service"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage authentication with Focal",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Focal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(sess).Login()
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new Focal account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(sess).Signup()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from Focal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(sess).Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display the current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(sess).WhoAmI()
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}
