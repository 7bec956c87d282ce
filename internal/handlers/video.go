package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "school-cms-api/internal/errors"
	"school-cms-api/internal/models"
	"school-cms-api/internal/services"
)

// VideoHandler coordinates the promotional video link handlers.
type VideoHandler struct {
	videoService *services.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videoService *services.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// ListHome returns the videos shown on the home page.
func (h *VideoHandler) ListHome(c *gin.Context) {
	h.listByPage(c, models.VideoPageHome)
}

// ListBlog returns the videos shown on the blog page.
func (h *VideoHandler) ListBlog(c *gin.Context) {
	h.listByPage(c, models.VideoPageBlog)
}

func (h *VideoHandler) listByPage(c *gin.Context, page models.VideoPage) {
	videos, err := h.videoService.ListByPage(page)
	if err != nil {
		apierrors.InternalError(c, "failed to fetch videos")
		return
	}

	c.JSON(http.StatusOK, videos)
}

// UpdateVideo overwrites a video entry, admin only.
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateVideoRequest struct {
		Enlace string           `json:"enlace" binding:"required"`
		Pagina models.VideoPage `json:"pagina" binding:"required,oneof=home blog"`
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	video, err := h.videoService.Update(id, services.UpdateVideoInput{
		Enlace: req.Enlace,
		Pagina: req.Pagina,
	})
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			apierrors.NotFound(c, "video not found")
			return
		}
		apierrors.InternalError(c, "failed to update video")
		return
	}

	c.JSON(http.StatusOK, video)
}
