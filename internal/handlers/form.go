package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "school-cms-api/internal/errors"
	"school-cms-api/internal/services"
)

// FormHandler coordinates contact-form submission handlers.
type FormHandler struct {
	formService *services.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// CreateSubmission stores a contact-form submission. Public, API key only.
func (h *FormHandler) CreateSubmission(c *gin.Context) {
	type CreateSubmissionRequest struct {
		Nombre   string `json:"nombre"`
		DNI      string `json:"dni"`
		Telefono string `json:"telefono"`
		Correo   string `json:"correo"`
		Grado    string `json:"grado"`
		Nivel    string `json:"nivel"`
	}

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	submission, err := h.formService.Create(services.CreateSubmissionInput{
		Nombre:   req.Nombre,
		DNI:      req.DNI,
		Telefono: req.Telefono,
		Correo:   req.Correo,
		Grado:    req.Grado,
		Nivel:    req.Nivel,
	})
	if err != nil {
		apierrors.InternalError(c, "failed to create submission")
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// ListSubmissions returns all submissions, admin only.
func (h *FormHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.formService.List()
	if err != nil {
		apierrors.InternalError(c, "failed to fetch submissions")
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// DeleteSubmission removes a submission and echoes the removed row.
func (h *FormHandler) DeleteSubmission(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	submission, err := h.formService.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			apierrors.NotFound(c, "submission not found")
			return
		}
		apierrors.InternalError(c, "failed to delete submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "submission deleted",
		"deleted": submission,
	})
}
