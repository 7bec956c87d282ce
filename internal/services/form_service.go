package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"school-cms-api/internal/models"
	"school-cms-api/internal/repository"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// FormService handles contact-form submissions: create and list only, no
// updates.
type FormService struct {
	formRepo repository.FormSubmissionRepository
}

// NewFormService creates a new FormService.
func NewFormService(formRepo repository.FormSubmissionRepository) *FormService {
	return &FormService{formRepo: formRepo}
}

// CreateSubmissionInput holds a contact-form submission.
type CreateSubmissionInput struct {
	Nombre   string
	DNI      string
	Telefono string
	Correo   string
	Grado    string
	Nivel    string
}

// Create stores a new submission.
func (s *FormService) Create(input CreateSubmissionInput) (*models.FormSubmission, error) {
	submission := &models.FormSubmission{
		Nombre:   input.Nombre,
		DNI:      input.DNI,
		Telefono: input.Telefono,
		Correo:   input.Correo,
		Grado:    input.Grado,
		Nivel:    input.Nivel,
	}

	if err := s.formRepo.Create(submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return submission, nil
}

// List returns all submissions.
func (s *FormService) List() ([]models.FormSubmission, error) {
	submissions, err := s.formRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// Delete removes a submission and returns the removed row.
func (s *FormService) Delete(id uint64) (*models.FormSubmission, error) {
	submission, err := s.formRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}

	if err := s.formRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete submission: %w", err)
	}

	return submission, nil
}
