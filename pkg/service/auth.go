package service

import (
	"fmt"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/formatter"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/output"
	"github.com/focalhq/cli/pkg/prompter"
	"github.com/focalhq/cli/pkg/session"
)

// AuthService handles login, signup and session teardown
type AuthService struct {
	session *session.Session
}

// NewAuthService creates a new auth service
func NewAuthService(s *session.Session) *AuthService {
	return &AuthService{session: s}
}

// Login handles user login
func (s *AuthService) Login() error {
	if s.session.LoggedIn() {
		formatter.PrintWarning("Already logged in as %s", s.session.Username())
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Authenticating...")
	resp, err := api.Login(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	if err := s.session.Login(resp.Token, &resp.User); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Login successful!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(output.Sanitize(resp.User.Username)))

	logger.Info("User logged in", "user_id", resp.User.ID)
	return nil
}

// Signup registers a new account and signs it in
func (s *AuthService) Signup() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	displayName, err := prompter.PromptString("Display name: ")
	if err != nil {
		return err
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Creating account...")
	resp, err := api.Signup(email, username, password, displayName)
	if err != nil {
		formatter.PrintError("Signup failed: %v", err)
		return err
	}

	if err := s.session.Login(resp.Token, &resp.User); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Account created!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(output.Sanitize(resp.User.Username)))

	logger.Info("User signed up", "user_id", resp.User.ID)
	return nil
}

// Logout tears down the current session
func (s *AuthService) Logout() error {
	if !s.session.LoggedIn() {
		formatter.PrintInfo("Not logged in.")
		return nil
	}

	username := s.session.Username()
	if err := s.session.Logout(); err != nil {
		formatter.PrintError("Logout failed: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Logged out %s", output.Sanitize(username))
	return nil
}

// WhoAmI displays the authenticated user's profile
func (s *AuthService) WhoAmI() error {
	if !s.session.LoggedIn() {
		formatter.PrintInfo("Not logged in. Run 'focal auth login' to sign in.")
		return nil
	}

	user, err := api.GetCurrentUser()
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	renderUserDetail(user)
	return nil
}
