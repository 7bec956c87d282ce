package dto

import (
	"time"

	"school-cms-api/internal/models"
)

// UserSummaryDTO is the author summary attached to posts.
type UserSummaryDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PublicPostDTO represents a post on the public pages. The creation
// timestamp is serialized as a fixed-format string.
type PublicPostDTO struct {
	ID         uint64             `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	PostTypeID uint64             `json:"postTypeId"`
	PostType   models.PostType    `json:"postType"`
	UserID     uint64             `json:"userId"`
	User       UserSummaryDTO     `json:"user"`
	StartAt    *time.Time         `json:"start_at"`
	EndAt      *time.Time         `json:"end_at"`
	CreatedAt  string             `json:"created_at"`
	Images     []models.PostImage `json:"images"`
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// ToPublicPostDTO converts a Post model to PublicPostDTO
func ToPublicPostDTO(post models.Post) PublicPostDTO {
	images := post.Images
	if images == nil {
		images = []models.PostImage{}
	}

	return PublicPostDTO{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		PostTypeID: post.PostTypeID,
		PostType:   post.PostType,
		UserID:     post.UserID,
		User:       ToUserSummaryDTO(post.User),
		StartAt:    post.StartAt,
		EndAt:      post.EndAt,
		CreatedAt:  post.CreatedAt.UTC().Format(time.RFC3339),
		Images:     images,
	}
}

// ToPublicPostList converts a slice of posts to public DTOs
func ToPublicPostList(posts []models.Post) []PublicPostDTO {
	out := make([]PublicPostDTO, len(posts))
	for i, post := range posts {
		out[i] = ToPublicPostDTO(post)
	}
	return out
}
