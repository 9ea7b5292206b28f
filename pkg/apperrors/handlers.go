package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope sent to clients.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err to the response in the standard envelope. Anything
// that is not an AppError becomes a generic 500 with no detail leakage.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		appErr.Details = nil
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
