package api

import (
	"fmt"

	"github.com/focalhq/cli/pkg/client"
	"github.com/focalhq/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// SearchUsers searches for users by username or display name. This is the
// query source for the people-tag selector.
func SearchUsers(query string, limit, offset int) (*SearchUsersResponse, error) {
	logger.Debug("Searching users", "query", query, "limit", limit, "offset", offset)

	var response SearchUsersResponse

	resp, err := client.GetClient().
		R().
		SetQueryParam("q", query).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetQueryParam("offset", fmt.Sprintf("%d", offset)).
		SetResult(&response).
		Get("/api/v1/users/search")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetProfile retrieves a user profile with their recent photos
func GetProfile(username string) (*ProfileResponse, error) {
	logger.Debug("Fetching profile", "username", username)

	var response ProfileResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/users/%s", username))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// UpdateProfile updates the current user's profile fields
func UpdateProfile(req *UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Patch("/api/v1/users/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var profileResp ProfileResponse
	if err := json.Unmarshal(resp.Body(), &profileResp); err != nil {
		return nil, err
	}

	logger.Debug("Profile updated", "username", profileResp.User.Username)
	return &profileResp.User, nil
}
