package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rentacar/rentacar-api/internal/core/ports"
)

// Response messages for mutating operations.
const (
	msgCreated = "Resource has been created successfully."
	msgUpdated = "Resource has been updated successfully."
	msgDeleted = "Resource has been deleted successfully."
)

// errorResponse mirrors the central error envelope for API documentation.
type errorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// defaultResponse is returned by mutations that have no payload.
type defaultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// pageResponse is the envelope for paginated lists. Field names follow the
// shape the web clients already consume.
type pageResponse struct {
	Content       any   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func newPageResponse(content any, page ports.PageRequest, total int64) pageResponse {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	return pageResponse{
		Content:       content,
		Number:        page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// pageRequestFromQuery parses page, size, sort, and direction query params.
// page is 1-indexed externally and converted to 0-indexed here; direction is
// case-insensitive ASC/DESC and defaults to DESC.
func pageRequestFromQuery(c echo.Context) (ports.PageRequest, error) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return ports.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "page must be a positive integer")
	}

	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size < 1 {
		return ports.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
	}

	direction := c.QueryParam("direction")
	descending := true
	if direction != "" {
		switch strings.ToUpper(direction) {
		case "ASC":
			descending = false
		case "DESC":
			descending = true
		default:
			return ports.PageRequest{}, echo.NewHTTPError(http.StatusBadRequest, "direction must be ASC or DESC")
		}
	}

	return ports.PageRequest{
		Page:       page - 1,
		Size:       size,
		Sort:       c.QueryParam("sort"),
		Descending: descending,
	}, nil
}
