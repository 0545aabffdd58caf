// Package handlers contains HTTP request handlers for the blog service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/httperr"
	"github.com/kiernans/blog-top/internal/service"
	"github.com/kiernans/blog-top/internal/validation"
	"github.com/sirupsen/logrus"
)

// validationBody extends the structured error body with the accumulated
// per-field errors.
type validationBody struct {
	httperr.Response
	Errors []validation.FieldError `json:"errors"`
}

// RespondError writes a structured error body with the standard title for
// the status code.
func RespondError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, httperr.New(status, detail))
}

// RespondValidationErrors writes a 400 with every failing field.
func RespondValidationErrors(c *gin.Context, fields []validation.FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, validationBody{
		Response: httperr.New(http.StatusBadRequest, "One or more fields failed validation."),
		Errors:   fields,
	})
}

// RespondServiceError maps a service-layer failure to its HTTP response:
// accumulated field errors to 400, authentication failures to 401, and
// storage errors through the formatter table.
func RespondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		RespondValidationErrors(c, validationErr.Fields)
		return
	}

	if errors.Is(err, service.ErrInvalidCredentials) ||
		errors.Is(err, service.ErrNotAuthenticated) ||
		errors.Is(err, service.ErrInvalidToken) {
		RespondError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	resp := httperr.Format(err)
	if resp.Status >= http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}
