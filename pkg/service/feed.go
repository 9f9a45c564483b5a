package service

import (
	"fmt"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/session"
)

// FeedService provides feed browsing
type FeedService struct {
	session *session.Session
}

// NewFeedService creates a new feed service
func NewFeedService(s *session.Session) *FeedService {
	return &FeedService{session: s}
}

// ViewFeed displays a page of the photo feed
func (fs *FeedService) ViewFeed(page, pageSize int) error {
	logger.Debug("Viewing feed", "page", page)

	feed, err := api.GetFeed(page, pageSize)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	if len(feed.Photos) == 0 {
		fmt.Println("No photos in your feed.")
		return nil
	}

	renderPhotoList("Your Feed", feed.Photos)
	fmt.Printf("Page %d · %d photos total\n", feed.Page, feed.TotalCount)
	return nil
}
