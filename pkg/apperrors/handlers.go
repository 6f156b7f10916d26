package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitflow_backend/internal/logger"
)

// ErrorResponse is the standard error payload. Success is always false so
// clients can branch on one flag.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error,omitempty"`
}

// GinErrorHandler maps AppErrors to responses. Debug switches on internal
// error detail; it must stay off outside development.
type GinErrorHandler struct {
	Debug bool
}

var defaultHandler = &GinErrorHandler{Debug: false}

// Init configures the package-level handler once at startup.
func Init(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "server error", appErr)
		if !h.Debug {
			// Never leak internals outside development mode.
			appErr = New(appErr.Code, appErr.Domain, "Internal server error", appErr.HTTPCode)
		}
	}

	resp := ErrorResponse{Success: false, Message: appErr.Message}
	if h.Debug {
		resp.Error = appErr
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, resp)
}

// HandleError sends err through the package-level handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
