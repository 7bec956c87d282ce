package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"school-cms-api/internal/dto"
	apierrors "school-cms-api/internal/errors"
	"school-cms-api/internal/middleware"
	"school-cms-api/internal/services"
	"school-cms-api/internal/utils"
)

// PostHandler coordinates the post aggregate HTTP handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts returns every post, admin only.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListAll()
	if err != nil {
		apierrors.InternalError(c, "failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ListMyPosts returns the posts authored by the caller.
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	claims, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "not authenticated")
		return
	}

	posts, err := h.postService.ListMine(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNoOwnPosts) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost returns one post, scoped to the caller. Non-admins asking for a
// post they do not own get the same 404 as for a missing id.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	claims, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "not authenticated")
		return
	}

	post, err := h.postService.Get(id, services.Viewer{
		UserID:  claims.UserID,
		IsAdmin: claims.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, "post not found")
			return
		}
		apierrors.InternalError(c, "failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a post with its images. Authorship comes from the
// verified token, not the body.
func (h *PostHandler) CreatePost(c *gin.Context) {
	claims, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "not authenticated")
		return
	}

	type CreatePostRequest struct {
		PostType uint64                 `json:"postType" binding:"required"`
		Title    string                 `json:"title" binding:"required"`
		Content  string                 `json:"content"`
		StartAt  *time.Time             `json:"start_at"`
		EndAt    *time.Time             `json:"end_at"`
		Images   []services.ImageInput  `json:"images"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.postService.Create(services.CreatePostInput{
		AuthorID:   claims.UserID,
		PostTypeID: req.PostType,
		Title:      req.Title,
		Content:    req.Content,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Images:     req.Images,
	})
	if err != nil {
		apierrors.InternalError(c, "failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost overwrites a post. A supplied image list, even an empty one,
// replaces all existing images; an omitted list leaves them untouched.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdatePostRequest struct {
		Title   string                 `json:"title" binding:"required"`
		Content string                 `json:"content"`
		StartAt *time.Time             `json:"start_at"`
		EndAt   *time.Time             `json:"end_at"`
		Images  *[]services.ImageInput `json:"images"`
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.postService.Update(id, services.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Images:  req.Images,
	})
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, "post not found")
			return
		}
		apierrors.InternalError(c, "failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post and its images.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(id); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, "post not found")
			return
		}
		apierrors.InternalError(c, "failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// ListPublicPosts returns posts for the public pages, newest first, with an
// optional ?tipo= filter and optional in-memory pagination.
func (h *PostHandler) ListPublicPosts(c *gin.Context) {
	var postTypeID *uint64
	if tipo := c.Query("tipo"); tipo != "" {
		parsed, err := strconv.ParseUint(tipo, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "invalid tipo filter")
			return
		}
		postTypeID = &parsed
	}

	posts, err := h.postService.ListPublic(postTypeID)
	if err != nil {
		apierrors.InternalError(c, "failed to fetch posts")
		return
	}

	formatted := dto.ToPublicPostList(posts)

	if params, paged := utils.GetPageParams(c); paged {
		pageItems, pageMeta := utils.Paginate(formatted, params)
		c.JSON(http.StatusOK, gin.H{
			"posts":      pageItems,
			"pagination": pageMeta,
		})
		return
	}

	c.JSON(http.StatusOK, formatted)
}

// GetPublicPost returns one post for the public detail page.
func (h *PostHandler) GetPublicPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPublic(id)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			apierrors.NotFound(c, "post not found")
			return
		}
		apierrors.InternalError(c, "failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicPostDTO(*post))
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
