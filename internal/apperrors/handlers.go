package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the single error envelope every endpoint returns.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response and aborts the request.
// Anything that is not an *AppError becomes a 500 INTERNAL_ERROR.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: appErr})
}
