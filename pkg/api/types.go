package api

import "time"

// Auth Request/Response Types
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email,omitempty"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	Role           string    `json:"role,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Location       string    `json:"location,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	PhotoCount     int       `json:"photo_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// Profile Response Types
type ProfileResponse struct {
	User   User    `json:"user"`
	Photos []Photo `json:"photos,omitempty"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Location    string `json:"location,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Photo Types
type Photo struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Caption        string    `json:"caption,omitempty"`
	ImageURL       string    `json:"image_url"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	Location       string    `json:"location,omitempty"`
	TaggedUsers    []User    `json:"tagged_users,omitempty"`
	LikeCount      int       `json:"like_count"`
	CommentCount   int       `json:"comment_count"`
	Liked          bool      `json:"liked"`
	CreatedAt      time.Time `json:"created_at"`
}

type FeedResponse struct {
	Photos     []Photo `json:"photos"`
	TotalCount int     `json:"total_count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
}

type PhotoUploadResponse struct {
	Photo   Photo  `json:"photo"`
	Message string `json:"message,omitempty"`
}

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// Comment Types
type Comment struct {
	ID             string    `json:"id"`
	PhotoID        string    `json:"photo_id"`
	UserID         string    `json:"user_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments   []Comment `json:"comments"`
	TotalCount int       `json:"total_count"`
}

// Search Types
type SearchUsersResponse struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

// Error Response. The service reports failures as a message field plus an
// optional machine-readable code.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
