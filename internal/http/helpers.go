package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/vyakarana/internal/catalog"
	"github.com/mrlokans/vyakarana/internal/cms"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// DataResponse wraps content read through the catalog. Stale is set when the
// CMS was unreachable and the local snapshot answered instead.
type DataResponse struct {
	Data  any  `json:"data"`
	Stale bool `json:"stale"`
	Total *int `json:"total,omitempty"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: "not_found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondCatalogError maps catalog read failures onto HTTP statuses.
func respondCatalogError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, cms.ErrUnavailable):
		log.Printf("[CMS] %s unavailable: %v", resource, err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "content service unavailable",
			Code:  "cms_unavailable",
		})
	default:
		respondInternalError(c, err, "load "+resource)
	}
}

// --- Success Response Helpers ---

// respondData sends a 200 OK response with catalog content.
func respondData(c *gin.Context, data any, stale bool) {
	c.JSON(http.StatusOK, DataResponse{Data: data, Stale: stale})
}

// respondList sends a 200 OK response with a collection and its size.
func respondList(c *gin.Context, data any, total int, stale bool) {
	c.JSON(http.StatusOK, DataResponse{Data: data, Stale: stale, Total: &total})
}

// respondAccepted sends a 202 Accepted response (for async operations).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseIntParam extracts a signed integer from URL parameters.
func parseIntParam(c *gin.Context, paramName string) (int, bool) {
	n, err := strconv.Atoi(c.Param(paramName))
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return n, true
}

// parseQueryLimit reads an optional positive integer query parameter.
// A missing value yields 0, true.
func parseQueryLimit(c *gin.Context, paramName string) (int, bool) {
	raw := c.Query(paramName)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return n, true
}
