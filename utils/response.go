// File: /utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saeed5077/blog-app/models"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Code    int               `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// RespondError maps a service error to the matching HTTP outcome: validation
// failures carry their field messages, missing resources map to 404, denied
// mutations to 403, and anything else collapses to a generic server error so
// no collaborator detail leaks to the client.
func RespondError(c *gin.Context, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "Validation failed",
			Code:   http.StatusBadRequest,
			Fields: ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		SendError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, models.ErrForbidden):
		SendError(c, http.StatusForbidden, "Not authorized to perform this action")
	default:
		_ = c.Error(err)
		SendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
