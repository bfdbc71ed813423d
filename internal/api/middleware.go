package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header and context key for request correlation.
const (
	RequestIDHeader  = "X-Request-Id"
	ContextRequestID = "requestID"
)

// HTTPError is a hard failure carrying its own status code. Handlers never
// produce these; they come from routing misses and other unhandled paths
// and are rendered by the fallback ErrorHandler middleware as plain text.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ValidationError is a store-level required-field violation that escaped
// handler-local handling. The fallback middleware reports the first
// offending field's message with HTTP 400.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation error"
	}
	return e.Messages[0]
}

// RequestID stamps every response with a correlation id, generating one
// when the client did not send its own.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// ErrorHandler is the fallback tier of the two-tier error contract.
//
// Handlers report their own validation and store failures locally as
// HTTP 200 + {"error"} bodies and never reach this middleware; only truly
// unhandled errors (routing misses, escaped validation failures) land here
// and get mapped to real status codes with plain-text bodies.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors[0].Err

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			c.String(http.StatusBadRequest, validationErr.Error())
			return
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			c.String(httpErr.Status, httpErr.Message)
			return
		}

		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
