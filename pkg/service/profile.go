package service

import (
	"fmt"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/formatter"
	"github.com/focalhq/cli/pkg/geocode"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/prompter"
	"github.com/focalhq/cli/pkg/session"
	"github.com/focalhq/cli/pkg/suggest"
)

// ProfileService provides profile viewing and editing
type ProfileService struct {
	session  *session.Session
	geocoder *geocode.Client
}

// NewProfileService creates a new profile service
func NewProfileService(s *session.Session) *ProfileService {
	return &ProfileService{session: s}
}

// ViewProfile displays a user's profile and their photos. An empty username
// means the authenticated user.
func (ps *ProfileService) ViewProfile(username string) error {
	if username == "" {
		if !ps.session.LoggedIn() {
			return fmt.Errorf("not logged in: pass a username or run 'focal auth login'")
		}
		username = ps.session.Username()
	}

	logger.Debug("Viewing profile", "username", username)

	profile, err := api.GetProfile(username)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	renderUserDetail(&profile.User)

	if len(profile.Photos) > 0 {
		fmt.Println()
		renderPhotoList("Photos", profile.Photos)
	}
	return nil
}

// EditProfile interactively updates the authenticated user's profile. Empty
// answers keep the current value; the location field is backed by the place
// autocomplete.
func (ps *ProfileService) EditProfile() error {
	if !ps.session.LoggedIn() {
		return fmt.Errorf("not logged in: run 'focal auth login' first")
	}

	current, err := api.GetProfile(ps.session.Username())
	if err != nil {
		return fmt.Errorf("failed to fetch current profile: %w", err)
	}

	displayName, err := prompter.PromptString(fmt.Sprintf("Display name [%s]: ", current.User.DisplayName))
	if err != nil {
		return err
	}

	bio, err := prompter.PromptString(fmt.Sprintf("Bio [%s]: ", current.User.Bio))
	if err != nil {
		return err
	}

	location, err := ps.promptLocation(current.User.Location)
	if err != nil {
		return err
	}

	req := &api.UpdateProfileRequest{
		DisplayName: displayName,
		Bio:         bio,
		Location:    location,
	}

	user, err := api.UpdateProfile(req)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	formatter.PrintSuccess("✓ Profile updated")
	renderUserDetail(user)
	return nil
}

func (ps *ProfileService) promptLocation(current string) (string, error) {
	if ps.geocoder == nil {
		ps.geocoder = geocode.NewClient()
	}

	label := fmt.Sprintf("Location [%s]:", current)
	_, value, err := prompter.PromptSuggest(label, ps.geocoder.SuggestQuery(5), suggest.Options{})
	if err != nil {
		return "", err
	}
	return value, nil
}
