package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/focalhq/cli/pkg/client"
	"github.com/focalhq/cli/pkg/logger"
)

// GetFeed retrieves the home feed, newest photos first
func GetFeed(page, pageSize int) (*FeedResponse, error) {
	logger.Debug("Fetching feed", "page", page, "page_size", pageSize)

	var response FeedResponse

	resp, err := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("page_size", fmt.Sprintf("%d", pageSize)).
		SetResult(&response).
		Get("/api/v1/photos/feed")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetPhoto retrieves a single photo by ID
func GetPhoto(photoID string) (*Photo, error) {
	logger.Debug("Fetching photo", "photo_id", photoID)

	var photo Photo

	resp, err := client.GetClient().
		R().
		SetResult(&photo).
		Get(fmt.Sprintf("/api/v1/photos/%s", photoID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &photo, nil
}

// UploadPhoto uploads an image with caption, location and tagged user IDs
// as a multipart form.
func UploadPhoto(filePath, caption, location string, taggedUserIDs []string) (*PhotoUploadResponse, error) {
	logger.Debug("Uploading photo", "file_path", filePath, "tagged", len(taggedUserIDs))

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return nil, err
		}
	}
	if location != "" {
		if err := writer.WriteField("location", location); err != nil {
			return nil, err
		}
	}
	if len(taggedUserIDs) > 0 {
		if err := writer.WriteField("tagged_user_ids", strings.Join(taggedUserIDs, ",")); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	var result PhotoUploadResponse
	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", writer.FormDataContentType()).
		SetBody(body.Bytes()).
		SetResult(&result).
		Post("/api/v1/photos")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	logger.Debug("Photo uploaded", "photo_id", result.Photo.ID)
	return &result, nil
}

// DeletePhoto deletes a photo owned by the current user
func DeletePhoto(photoID string) error {
	logger.Debug("Deleting photo", "photo_id", photoID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/photos/%s", photoID))

	return CheckResponse(resp, err)
}

// ToggleLike toggles the like state on a photo and returns the new state
func ToggleLike(photoID string) (*LikeResponse, error) {
	logger.Debug("Toggling like", "photo_id", photoID)

	var result LikeResponse

	resp, err := client.GetClient().
		R().
		SetResult(&result).
		Post(fmt.Sprintf("/api/v1/photos/%s/like", photoID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &result, nil
}
