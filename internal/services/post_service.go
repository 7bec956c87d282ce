package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"school-cms-api/internal/models"
	"school-cms-api/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNoOwnPosts   = errors.New("no posts found for this user")
)

// Viewer is the identity a read operation runs as, taken from the verified
// token and threaded explicitly into each call.
type Viewer struct {
	UserID  uint64
	IsAdmin bool
}

// PostService owns the post+images aggregate: a post has zero or more images
// and at most one of them is the cover.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ImageInput is a caller-supplied image reference. URLs are opaque strings.
type ImageInput struct {
	ImageURL string `json:"image_url" binding:"required"`
	IsCover  bool   `json:"is_cover"`
}

// CreatePostInput holds the data for a new post. AuthorID comes from the
// verified token, never from the request body.
type CreatePostInput struct {
	AuthorID   uint64
	PostTypeID uint64
	Title      string
	Content    string
	StartAt    *time.Time
	EndAt      *time.Time
	Images     []ImageInput
}

// UpdatePostInput holds a full overwrite of a post's fields. Images is a
// pointer on purpose: nil means the request omitted the list entirely and
// existing images stay untouched, while an empty non-nil list wipes them.
// StartAt/EndAt carry no such distinction, absent always means null.
type UpdatePostInput struct {
	Title   string
	Content string
	StartAt *time.Time
	EndAt   *time.Time
	Images  *[]ImageInput
}

// Create persists the post first, then its images, and returns the full
// aggregate with author summary attached.
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Title:      input.Title,
		Content:    input.Content,
		PostTypeID: input.PostTypeID,
		UserID:     input.AuthorID,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if len(input.Images) > 0 {
		images := make([]models.PostImage, len(input.Images))
		for i, img := range input.Images {
			images[i] = models.PostImage{
				ImageURL: img.ImageURL,
				IsCover:  img.IsCover,
			}
		}
		if err := s.postRepo.AddImages(post.ID, images); err != nil {
			return nil, fmt.Errorf("failed to create post images: %w", err)
		}
	}

	return s.postRepo.FindByID(post.ID, nil)
}

// Update overwrites title, content and the date range, and replaces the whole
// image set when one was supplied. The post is read first so a missing id
// fails before any mutation.
func (s *PostService) Update(id uint64, input UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	if input.Images != nil {
		images := buildImageSet(*input.Images)
		if err := s.postRepo.ReplaceImages(id, images); err != nil {
			return nil, fmt.Errorf("failed to replace post images: %w", err)
		}
	}

	// Save a bare row so the preloaded relations are not written back.
	updated := &models.Post{
		ID:         post.ID,
		Title:      input.Title,
		Content:    input.Content,
		PostTypeID: post.PostTypeID,
		UserID:     post.UserID,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
		CreatedAt:  post.CreatedAt,
	}

	if err := s.postRepo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.postRepo.FindByID(id, nil)
}

// Delete removes the post and its images.
func (s *PostService) Delete(id uint64) error {
	if _, err := s.postRepo.FindByID(id, nil); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to find post: %w", err)
	}

	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

// Get fetches one post as the given viewer. Non-admins only see their own
// posts: the ownership filter is part of the lookup, so a foreign post and a
// missing one produce the same not-found error.
func (s *PostService) Get(id uint64, viewer Viewer) (*models.Post, error) {
	var authorID *uint64
	if !viewer.IsAdmin {
		authorID = &viewer.UserID
	}

	post, err := s.postRepo.FindByID(id, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	return post, nil
}

// GetPublic fetches one post for the public detail page, no ownership scoping.
func (s *PostService) GetPublic(id uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// ListMine returns the caller's posts.
func (s *PostService) ListMine(authorID uint64) ([]models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, ErrNoOwnPosts
	}
	return posts, nil
}

// ListAll returns every post, admin only.
func (s *PostService) ListAll() ([]models.Post, error) {
	posts, err := s.postRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListPublic returns posts for the public pages, newest first.
func (s *PostService) ListPublic(postTypeID *uint64) ([]models.Post, error) {
	posts, err := s.postRepo.ListPublic(postTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// buildImageSet maps image inputs to rows. When no input explicitly flags a
// cover, the first image becomes the cover, keeping the single-cover
// invariant on the default path.
func buildImageSet(inputs []ImageInput) []models.PostImage {
	hasCover := false
	for _, img := range inputs {
		if img.IsCover {
			hasCover = true
			break
		}
	}

	images := make([]models.PostImage, len(inputs))
	for i, img := range inputs {
		images[i] = models.PostImage{
			ImageURL: img.ImageURL,
			IsCover:  img.IsCover || (i == 0 && !hasCover),
		}
	}
	return images
}
