package repository

import (
	"school-cms-api/internal/models"

	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// AddImages persists images for a post
func (r *GormPostRepository) AddImages(postID uint64, images []models.PostImage) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].PostID = postID
	}
	return r.db.Create(&images).Error
}

// ReplaceImages removes every image of a post and recreates the given set.
// Delete and recreate run in one transaction so a failure cannot leave the
// post with a partial image set.
func (r *GormPostRepository) ReplaceImages(postID uint64, images []models.PostImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostImage{}).Error; err != nil {
			return err
		}

		if len(images) == 0 {
			return nil
		}

		for i := range images {
			images[i].PostID = postID
		}
		return tx.Create(&images).Error
	})
}

// FindByID finds a post with relations, optionally scoped to an author.
func (r *GormPostRepository) FindByID(id uint64, authorID *uint64) (*models.Post, error) {
	query := r.db.
		Preload("PostType").
		Preload("Images").
		Preload("User").
		Where("id = ?", id)

	if authorID != nil {
		query = query.Where("user_id = ?", *authorID)
	}

	var post models.Post
	if err := query.First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAll returns every post with type and author attached
func (r *GormPostRepository) ListAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.
		Preload("PostType").
		Preload("User").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByAuthor returns the posts written by one user
func (r *GormPostRepository) ListByAuthor(authorID uint64) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.
		Preload("PostType").
		Preload("Images").
		Preload("User").
		Where("user_id = ?", authorID).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPublic returns posts for the public pages, newest first
func (r *GormPostRepository) ListPublic(postTypeID *uint64) ([]models.Post, error) {
	query := r.db.
		Preload("PostType").
		Preload("Images").
		Preload("User")

	if postTypeID != nil {
		query = query.Where("post_type_id = ?", *postTypeID)
	}

	var posts []models.Post
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates the post row
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post and its images. Images go first to satisfy the
// referential constraint.
func (r *GormPostRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Post{}, id).Error
	})
}
