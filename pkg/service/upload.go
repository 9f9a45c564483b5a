package service

import (
	"fmt"
	"os"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/formatter"
	"github.com/focalhq/cli/pkg/geocode"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/prompter"
	"github.com/focalhq/cli/pkg/session"
	"github.com/focalhq/cli/pkg/suggest"
)

// UploadOptions carries the upload form's fields. Empty fields are filled
// interactively when Interactive is set.
type UploadOptions struct {
	FilePath    string
	Caption     string
	Location    string
	TaggedIDs   []string
	Interactive bool
}

// UploadService drives the photo upload form
type UploadService struct {
	session  *session.Session
	geocoder *geocode.Client
}

// NewUploadService creates a new upload service
func NewUploadService(s *session.Session) *UploadService {
	return &UploadService{session: s}
}

// Upload posts a new photo with caption, location and tagged people
func (us *UploadService) Upload(opts UploadOptions) error {
	if !us.session.LoggedIn() {
		return fmt.Errorf("not logged in: run 'focal auth login' first")
	}

	if opts.FilePath == "" {
		return fmt.Errorf("image file is required")
	}
	if _, err := os.Stat(opts.FilePath); err != nil {
		return fmt.Errorf("cannot read image file: %w", err)
	}

	if opts.Interactive {
		if err := us.fillForm(&opts); err != nil {
			return err
		}
	}

	logger.Debug("Uploading photo",
		"file", opts.FilePath,
		"location", opts.Location,
		"tags", len(opts.TaggedIDs))

	formatter.PrintInfo("Uploading...")
	resp, err := api.UploadPhoto(opts.FilePath, opts.Caption, opts.Location, opts.TaggedIDs)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	formatter.PrintSuccess("✓ Photo uploaded (%s)", resp.Photo.ID)
	renderPhotoRow(&resp.Photo)
	return nil
}

func (us *UploadService) fillForm(opts *UploadOptions) error {
	if opts.Caption == "" {
		caption, err := prompter.PromptString("Caption: ")
		if err != nil {
			return err
		}
		opts.Caption = caption
	}

	if opts.Location == "" {
		if us.geocoder == nil {
			us.geocoder = geocode.NewClient()
		}

		_, location, err := prompter.PromptSuggest(
			"Location (optional):",
			us.geocoder.SuggestQuery(5),
			suggest.Options{},
		)
		if err != nil {
			return err
		}
		opts.Location = location
	}

	if len(opts.TaggedIDs) == 0 {
		tagged, _, err := prompter.PromptSuggest(
			"Tag people (optional):",
			userSuggestQuery(10),
			suggest.Options{
				MultiSelect: true,
				SelfID:      us.session.UserID(),
			},
		)
		if err != nil {
			return err
		}
		for _, item := range tagged {
			opts.TaggedIDs = append(opts.TaggedIDs, item.ID)
		}
	}

	return nil
}
