package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"school-cms-api/internal/models"
	"school-cms-api/internal/repository"
)

var ErrVideoNotFound = errors.New("video not found")

// VideoService handles the promotional video links on the public pages.
type VideoService struct {
	videoRepo repository.VideoRepository
}

// NewVideoService creates a new VideoService.
func NewVideoService(videoRepo repository.VideoRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo}
}

// ListByPage returns the videos for one public page tag.
func (s *VideoService) ListByPage(page models.VideoPage) ([]models.Video, error) {
	videos, err := s.videoRepo.ListByPage(page)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// UpdateVideoInput holds a video link update.
type UpdateVideoInput struct {
	Enlace string
	Pagina models.VideoPage
}

// Update overwrites a video entry.
func (s *VideoService) Update(id uint64, input UpdateVideoInput) (*models.Video, error) {
	video, err := s.videoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to find video: %w", err)
	}

	video.Enlace = input.Enlace
	video.Pagina = input.Pagina

	if err := s.videoRepo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}
