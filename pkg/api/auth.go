package api

import (
	"github.com/focalhq/cli/pkg/client"
	"github.com/focalhq/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// Login authenticates user with email and password
func Login(email, password string) (*AuthResponse, error) {
	logger.Debug("Attempting login", "email", email)

	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/v1/auth/login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := json.Unmarshal(resp.Body(), &authResp); err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "username", authResp.User.Username)
	return &authResp, nil
}

// Signup registers a new account and returns a live session
func Signup(email, username, password, displayName string) (*AuthResponse, error) {
	logger.Debug("Attempting signup", "email", email, "username", username)

	req := SignupRequest{
		Email:       email,
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/v1/auth/signup")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := json.Unmarshal(resp.Body(), &authResp); err != nil {
		return nil, err
	}

	logger.Debug("Signup successful", "username", authResp.User.Username)
	return &authResp, nil
}

// GetCurrentUser gets the current authenticated user
func GetCurrentUser() (*User, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		Get("/api/v1/auth/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var profileResp ProfileResponse
	if err := json.Unmarshal(resp.Body(), &profileResp); err != nil {
		return nil, err
	}

	logger.Debug("Current user fetched", "username", profileResp.User.Username)
	return &profileResp.User, nil
}
