package repository

import (
	"school-cms-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete removes a user
	Delete(id uint64) error
}

// PostRepository defines the interface for the post aggregate: a post plus
// its owned image collection.
type PostRepository interface {
	// Create creates a new post row (images are attached separately)
	Create(post *models.Post) error

	// AddImages persists images for a post
	AddImages(postID uint64, images []models.PostImage) error

	// ReplaceImages removes every image of a post and recreates the given
	// set, atomically
	ReplaceImages(postID uint64, images []models.PostImage) error

	// FindByID finds a post with its type, author and images. When authorID
	// is non-nil the lookup itself is scoped to that author, so a post owned
	// by someone else is indistinguishable from a missing one.
	FindByID(id uint64, authorID *uint64) (*models.Post, error)

	// ListAll returns every post with type and author attached
	ListAll() ([]models.Post, error)

	// ListByAuthor returns the posts written by one user
	ListByAuthor(authorID uint64) ([]models.Post, error)

	// ListPublic returns posts for the public pages, newest first, optionally
	// filtered by post type
	ListPublic(postTypeID *uint64) ([]models.Post, error)

	// Update updates the post row
	Update(post *models.Post) error

	// Delete removes a post and its images, images first, atomically
	Delete(id uint64) error
}

// VideoRepository defines the interface for promotional video links
type VideoRepository interface {
	// ListByPage returns the videos tagged for one public page
	ListByPage(page models.VideoPage) ([]models.Video, error)

	// FindByID finds a video by ID
	FindByID(id uint64) (*models.Video, error)

	// Update updates a video
	Update(video *models.Video) error
}

// FormSubmissionRepository defines the interface for contact-form submissions
type FormSubmissionRepository interface {
	// Create creates a new submission
	Create(submission *models.FormSubmission) error

	// List returns all submissions
	List() ([]models.FormSubmission, error)

	// FindByID finds a submission by ID
	FindByID(id uint64) (*models.FormSubmission, error)

	// Delete removes a submission
	Delete(id uint64) error
}
