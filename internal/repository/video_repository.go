package repository

import (
	"school-cms-api/internal/models"

	"gorm.io/gorm"
)

// GormVideoRepository is a GORM implementation of VideoRepository
type GormVideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new VideoRepository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &GormVideoRepository{db: db}
}

// ListByPage returns the videos tagged for one public page
func (r *GormVideoRepository) ListByPage(page models.VideoPage) ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.Where("pagina = ?", page).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// FindByID finds a video by ID
func (r *GormVideoRepository) FindByID(id uint64) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// Update updates a video
func (r *GormVideoRepository) Update(video *models.Video) error {
	return r.db.Save(video).Error
}
