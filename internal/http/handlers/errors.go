package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripzy/internal/apiclient"
	"tripzy/internal/domain"
	"tripzy/internal/http/middleware"
)

// ErrorResponse standardizes error payloads of the JSON endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// errorStatus maps an error kind to status, code and a message safe to show.
func errorStatus(err error) (int, string, string) {
	switch domain.HTTPStatus(err) {
	case http.StatusBadRequest:
		return http.StatusBadRequest, "validation_error", err.Error()
	case http.StatusNotFound:
		return http.StatusNotFound, "not_found", err.Error()
	case http.StatusConflict:
		return http.StatusConflict, "conflict", err.Error()
	case http.StatusInternalServerError:
		return http.StatusInternalServerError, "internal_error", err.Error()
	}
	if re, ok := apiclient.AsRequestError(err); ok {
		return http.StatusBadGateway, "upstream_error", re.Error()
	}
	return http.StatusInternalServerError, "internal_error", "something went wrong"
}

// RespondDomainError maps domain and upstream errors to JSON responses.
func RespondDomainError(c *gin.Context, err error) {
	status, code, msg := errorStatus(err)
	_ = c.Error(err)
	respondError(c, status, code, msg)
}

// renderError shows the error page for HTML routes.
func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.tmpl", gin.H{
		"Title":     http.StatusText(status),
		"Nav":       "",
		"Status":    status,
		"Message":   message,
		"RequestID": middleware.GetRequestID(c),
	})
}
