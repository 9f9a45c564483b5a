package service

import (
	"fmt"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/formatter"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/prompter"
	"github.com/focalhq/cli/pkg/session"
)

// PhotoService provides operations on a single photo
type PhotoService struct {
	session *session.Session
}

// NewPhotoService creates a new photo service
func NewPhotoService(s *session.Session) *PhotoService {
	return &PhotoService{session: s}
}

// ViewPhoto displays a photo's details and its comments
func (ps *PhotoService) ViewPhoto(photoID string) error {
	logger.Debug("Viewing photo", "photo_id", photoID)

	photo, err := api.GetPhoto(photoID)
	if err != nil {
		return fmt.Errorf("failed to fetch photo: %w", err)
	}

	renderPhotoDetail(photo)

	comments, err := api.GetComments(photoID)
	if err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}
	renderComments(comments.Comments)

	return nil
}

// ToggleLike likes or unlikes a photo
func (ps *PhotoService) ToggleLike(photoID string) error {
	logger.Debug("Toggling like", "photo_id", photoID)

	resp, err := api.ToggleLike(photoID)
	if err != nil {
		return fmt.Errorf("failed to toggle like: %w", err)
	}

	if resp.Liked {
		formatter.PrintSuccess("♥ Liked (%d likes)", resp.LikeCount)
	} else {
		formatter.PrintInfo("Unliked (%d likes)", resp.LikeCount)
	}
	return nil
}

// AddComment posts a comment, prompting for the text when none is given
func (ps *PhotoService) AddComment(photoID, text string) error {
	if text == "" {
		var err error
		text, err = prompter.PromptString("Comment: ")
		if err != nil {
			return err
		}
	}
	if text == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	logger.Debug("Posting comment", "photo_id", photoID)

	comment, err := api.PostComment(photoID, text)
	if err != nil {
		return fmt.Errorf("failed to post comment: %w", err)
	}

	formatter.PrintSuccess("✓ Comment posted (%s)", comment.ID)
	return nil
}

// DeletePhoto deletes one of the user's own photos after confirmation
func (ps *PhotoService) DeletePhoto(photoID string, skipConfirm bool) error {
	if !skipConfirm {
		confirm, err := prompter.PromptConfirm("Delete this photo? This cannot be undone.")
		if err != nil {
			return err
		}
		if !confirm {
			formatter.PrintInfo("Aborted.")
			return nil
		}
	}

	logger.Debug("Deleting photo", "photo_id", photoID)

	if err := api.DeletePhoto(photoID); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	formatter.PrintSuccess("✓ Photo deleted")
	return nil
}
