package repository

import (
	"school-cms-api/internal/models"

	"gorm.io/gorm"
)

// GormFormSubmissionRepository is a GORM implementation of FormSubmissionRepository
type GormFormSubmissionRepository struct {
	db *gorm.DB
}

// NewFormSubmissionRepository creates a new FormSubmissionRepository
func NewFormSubmissionRepository(db *gorm.DB) FormSubmissionRepository {
	return &GormFormSubmissionRepository{db: db}
}

// Create creates a new submission
func (r *GormFormSubmissionRepository) Create(submission *models.FormSubmission) error {
	return r.db.Create(submission).Error
}

// List returns all submissions
func (r *GormFormSubmissionRepository) List() ([]models.FormSubmission, error) {
	var submissions []models.FormSubmission
	if err := r.db.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// FindByID finds a submission by ID
func (r *GormFormSubmissionRepository) FindByID(id uint64) (*models.FormSubmission, error) {
	var submission models.FormSubmission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// Delete removes a submission
func (r *GormFormSubmissionRepository) Delete(id uint64) error {
	return r.db.Delete(&models.FormSubmission{}, id).Error
}
