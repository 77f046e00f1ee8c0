// Package response provides standardized response helpers.
package response

import (
	"net/http"

	apperrors "pokedex-api/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse defines the standard JSON error response structure.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON sends a success response with the negotiated Content-Language header.
func JSON(c *gin.Context, contentLanguage string, data any) {
	c.Header("Content-Language", contentLanguage)
	c.JSON(http.StatusOK, data)
}

// PlainText sends a plain text success response with the Content-Language header.
func PlainText(c *gin.Context, contentLanguage string, text string) {
	c.Header("Content-Language", contentLanguage)
	c.String(http.StatusOK, "%s", text)
}

// Error sends a standardized error response using an APIError.
func Error(c *gin.Context, apiErr *apperrors.APIError) {
	c.JSON(apiErr.HTTPStatus, ErrorResponse{
		Code:    apiErr.Code,
		Message: apiErr.Message,
	})
}
