package api

import (
	"fmt"

	"github.com/focalhq/cli/pkg/client"
	"github.com/focalhq/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// GetComments retrieves comments for a photo, oldest first
func GetComments(photoID string) (*CommentListResponse, error) {
	logger.Debug("Fetching comments", "photo_id", photoID)

	var response CommentListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/photos/%s/comments", photoID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// PostComment adds a comment to a photo
func PostComment(photoID, text string) (*Comment, error) {
	logger.Debug("Posting comment", "photo_id", photoID)

	reqBody, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(fmt.Sprintf("/api/v1/photos/%s/comments", photoID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var comment Comment
	if err := json.Unmarshal(resp.Body(), &comment); err != nil {
		return nil, err
	}

	return &comment, nil
}
