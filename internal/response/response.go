// Package response provides the JSON envelope helpers shared by all
// handlers and the mapping from domain errors to HTTP statuses.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kunci-cimahi/service-booking/internal/domain"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

// NoContent writes a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Error: message})
}

// Unauthorized writes a 401 response with the given message.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, envelope{Success: false, Error: message})
}

// Error maps a domain error to its HTTP status. Unknown errors, including
// store failures, surface as 500 with the underlying message.
func Error(c *gin.Context, err error) {
	var (
		validationErr   *domain.ValidationError
		notFoundErr     *domain.NotFoundError
		conflictErr     *domain.ConflictError
		unauthorizedErr *domain.UnauthorizedError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, envelope{Success: false, Error: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, envelope{Success: false, Error: conflictErr.Message})
	case errors.As(err, &unauthorizedErr):
		c.JSON(http.StatusUnauthorized, envelope{Success: false, Error: unauthorizedErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: err.Error()})
	}
}
