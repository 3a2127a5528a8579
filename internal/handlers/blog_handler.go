package handlers

import (
	"strconv"

	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	service  services.BlogService
	comments services.CommentService
	logger   *logrus.Logger
}

func NewBlogHandler(service services.BlogService, comments services.CommentService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{service: service, comments: comments, logger: logger}
}

// List godoc
// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "Admin all-languages view"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /blogs [get]
func (h *BlogHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("allLangs") == "true" {
		if !middleware.IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		grouped, err := h.service.AllGrouped(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve blogs")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"blogs": grouped})
	}

	lang := c.Query("lang", "en")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = utils.NormalizePaging(page, limit)

	rows, total, err := h.service.List(ctx, lang, page, limit)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve blogs")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"blogs":      rows,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

// Get godoc
// @Summary Get one blog post by slug
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Param lang query string false "Language code" default(en)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /blogs/{slug} [get]
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	row, err := h.service.Get(c.Context(), c.Params("slug"), c.Query("lang", "en"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve blog")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"blog": row})
}

// Create godoc
// @Summary Create a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body BlogRequest true "Blog payload (English)"
// @Success 201 {object} map[string]interface{}
// @Router /blogs [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Create(c.Context(), services.BlogInput{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create blog")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Blog created successfully", fiber.Map{"blogs": rows})
}

// Update godoc
// @Summary Update a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param slug path string true "Blog slug"
// @Param blog body BlogUpdateRequest true "Changed fields (English)"
// @Success 200 {object} map[string]interface{}
// @Router /blogs/{slug} [put]
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	var req BlogUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Update(c.Context(), c.Params("slug"), services.BlogUpdateInput{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update blog")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Blog updated successfully", fiber.Map{"blogs": rows})
}

// Delete godoc
// @Summary Delete a blog post and its comments
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} map[string]interface{}
// @Router /blogs/{slug} [delete]
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("slug")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete blog")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Blog deleted successfully", nil)
}

// ListComments godoc
// @Summary List comments on a blog post
// @Description Public requests see approved comments only; admins see all, or every language grouped with allLangs=true.
// @Tags comments
// @Produce json
// @Param slug path string true "Blog slug"
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "Admin all-languages view"
// @Success 200 {object} map[string]interface{}
// @Router /blogs/{slug}/comments [get]
func (h *BlogHandler) ListComments(c *fiber.Ctx) error {
	ctx := c.Context()
	slug := c.Params("slug")

	if c.Query("allLangs") == "true" {
		if !middleware.IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		grouped, err := h.comments.AllGrouped(ctx, slug)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve comments")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"comments": grouped})
	}

	approvedOnly := !middleware.IsAdmin(c)
	rows, err := h.comments.ListForBlog(ctx, slug, c.Query("lang", "en"), approvedOnly)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve comments")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"comments": rows})
}

// CreateComment godoc
// @Summary Post a comment on a blog post
// @Description Public endpoint; the comment starts unapproved and is replicated across all languages.
// @Tags comments
// @Accept json
// @Produce json
// @Param slug path string true "Blog slug"
// @Param comment body CommentRequest true "Comment payload"
// @Success 201 {object} map[string]interface{}
// @Router /blogs/{slug}/comments [post]
func (h *BlogHandler) CreateComment(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.comments.Create(c.Context(), c.Params("slug"), services.CommentInput{
		AuthorName: req.AuthorName,
		Text:       req.Text,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create comment")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Comment submitted successfully", fiber.Map{"comments": rows})
}

// ApproveComment godoc
// @Summary Approve or reject a comment
// @Description Approval is applied to every language row of the comment, addressed by any one row id.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment row id"
// @Param approval body ApproveRequest true "Approval flag"
// @Success 200 {object} map[string]interface{}
// @Router /comments/{id}/approve [patch]
func (h *BlogHandler) ApproveComment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	var req ApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.comments.Approve(c.Context(), uint(id), req.IsApproved); err != nil {
		return respondError(c, h.logger, err, "Failed to update comment")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Comment updated successfully", nil)
}

// DeleteComment godoc
// @Summary Delete a comment in all languages
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment logical id"
// @Success 200 {object} map[string]interface{}
// @Router /comments/{commentId} [delete]
func (h *BlogHandler) DeleteComment(c *fiber.Ctx) error {
	if err := h.comments.Delete(c.Context(), c.Params("commentId")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete comment")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Comment deleted successfully", nil)
}
