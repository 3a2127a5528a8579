package handlers

import (
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	storage *services.MinIOService
	logger  *logrus.Logger
}

func NewUploadHandler(storage *services.MinIOService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{storage: storage, logger: logger}
}

// Upload godoc
// @Summary Upload an image
// @Description Streams a multipart file into object storage and returns its public URL.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unable to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.storage.UploadFile(c.Context(), file, fileHeader.Size, fileHeader.Filename, contentType)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to upload file")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "File uploaded successfully", fiber.Map{
		"url": url,
	})
}

// Presign godoc
// @Summary Get a presigned upload URL
// @Description Returns a short-lived PUT URL so the dashboard can upload directly to object storage.
// @Tags upload
// @Produce json
// @Param filename query string true "Original filename"
// @Param contentType query string false "MIME type" default(application/octet-stream)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /upload/presign [get]
func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter filename is required")
	}
	contentType := c.Query("contentType", "application/octet-stream")

	uploadURL, publicURL, err := h.storage.GeneratePresignedURL(filename, contentType)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to generate upload URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"uploadUrl": uploadURL,
		"publicUrl": publicURL,
	})
}
