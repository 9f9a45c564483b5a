package service

import (
	"context"
	"fmt"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/geocode"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/session"
	"github.com/focalhq/cli/pkg/suggest"
)

// SearchService provides user and place search
type SearchService struct {
	session  *session.Session
	geocoder *geocode.Client
}

// NewSearchService creates a new search service
func NewSearchService(s *session.Session) *SearchService {
	return &SearchService{session: s}
}

// SearchUsers displays users matching the query
func (ss *SearchService) SearchUsers(query string, limit int) error {
	logger.Debug("Searching users", "query", query)

	results, err := api.SearchUsers(query, limit, 0)
	if err != nil {
		return fmt.Errorf("failed to search users: %w", err)
	}

	if len(results.Users) == 0 {
		fmt.Printf("No users found for \"%s\"\n", query)
		return nil
	}

	renderUserList(results.Users)
	return nil
}

// SearchPlaces displays geocoded places matching the query
func (ss *SearchService) SearchPlaces(query string, limit int) error {
	logger.Debug("Searching places", "query", query)

	if ss.geocoder == nil {
		ss.geocoder = geocode.NewClient()
	}

	places, err := ss.geocoder.Search(context.Background(), query, limit)
	if err != nil {
		return fmt.Errorf("failed to search places: %w", err)
	}

	if len(places) == 0 {
		fmt.Printf("No places found for \"%s\"\n", query)
		return nil
	}

	for i, p := range places {
		fmt.Printf("%d) %s  (%s, %s)\n", i+1, p.DisplayName, p.Lat, p.Lon)
	}
	return nil
}

// userSuggestQuery adapts the user search endpoint into a suggestion source
// for the people selector.
func userSuggestQuery(limit int) suggest.QueryFunc {
	return func(ctx context.Context, query string) ([]suggest.Item, error) {
		results, err := api.SearchUsers(query, limit, 0)
		if err != nil {
			return nil, err
		}

		items := make([]suggest.Item, 0, len(results.Users))
		for _, u := range results.Users {
			items = append(items, suggest.Item{
				ID:        u.ID,
				Name:      u.Username,
				AvatarURL: u.AvatarURL,
			})
		}
		return items, nil
	}
}
