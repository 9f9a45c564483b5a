// Package geocode is a minimal client for a Nominatim-style place search
// endpoint. It backs the location autocomplete; it needs no authentication.
package geocode

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/focalhq/cli/pkg/config"
	"github.com/focalhq/cli/pkg/logger"
	"github.com/focalhq/cli/pkg/suggest"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Place is one geocoding result, ordered by relevance.
type Place struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Client queries the configured geocoding endpoint.
type Client struct {
	http *resty.Client
	// Public Nominatim allows at most one request per second
	limiter *rate.Limiter
}

// NewClient builds a client against the configured geocoder base URL.
func NewClient() *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(config.GetString("geocoder.base_url"))
	httpClient.SetTimeout(time.Duration(config.GetInt("geocoder.timeout")) * time.Second)
	httpClient.SetHeader("User-Agent", "Focal-CLI/0.1.0")

	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Search returns up to limit places matching the free-text query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Debug("Geocoding query", "query", query, "limit", limit)

	var places []Place
	resp, err := c.http.
		R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("format", "json").
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&places).
		Get("/search")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("geocoder returned %s", resp.Status())
	}

	return places, nil
}

// SuggestQuery adapts Search into a suggest.QueryFunc for the location
// widget.
func (c *Client) SuggestQuery(limit int) suggest.QueryFunc {
	return func(ctx context.Context, query string) ([]suggest.Item, error) {
		places, err := c.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}

		items := make([]suggest.Item, 0, len(places))
		for _, p := range places {
			items = append(items, suggest.Item{
				ID:   strconv.FormatInt(p.PlaceID, 10),
				Name: p.DisplayName,
			})
		}
		return items, nil
	}
}
