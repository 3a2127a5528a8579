package utils

import "github.com/gofiber/fiber/v2"

// Pagination is the paging block attached to list responses.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// SuccessResponse writes the {success, message?, <dataKey>: ...} envelope. Extra
// top-level keys (the resource payload, pagination) come in via data.
func SuccessResponse(c *fiber.Ctx, code int, message string, data fiber.Map) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse writes {success: false, message}.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// NormalizePaging clamps page/limit query values to sane bounds.
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// NewPagination computes paging metadata for a page/limit/total triple.
func NewPagination(page, limit int, total int64) Pagination {
	page, limit = NormalizePaging(page, limit)
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
