package handler

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"legalapi/internal/apperr"
	"legalapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, nil)
}

// writeErrorDetails is writeError with an optional details object, used
// for dependency conflicts that list the blocking row ids.
func writeErrorDetails(c *fiber.Ctx, status int, code, message string, details map[string]any) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError translates service-layer errors into the standardized
// payload. Typed errors carry their own user-facing message; anything
// unclassified becomes a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	var (
		nf *apperr.NotFoundError
		cf *apperr.ConflictError
		de *apperr.DependencyError
		ve *apperr.ValidationError
	)
	switch {
	case errors.As(err, &nf):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", nf.Error())
	case errors.As(err, &cf):
		return writeError(c, fiber.StatusBadRequest, "DUPLICATE_"+strings.ToUpper(cf.Field), cf.Error())
	case errors.As(err, &de):
		details := map[string]any{de.Dependent.Plural(): de.IDs}
		return writeErrorDetails(c, fiber.StatusBadRequest, "DEPENDENT_ROWS", de.Error(), details)
	case errors.As(err, &ve):
		return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", ve.Error())
	case errors.Is(err, apperr.ErrNoFields):
		return writeError(c, fiber.StatusBadRequest, "NO_UPDATE_FIELDS", err.Error())
	case errors.Is(err, apperr.ErrInvalidQuery):
		return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", err.Error())
	case errors.Is(err, sql.ErrNoRows):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Recurso no encontrado")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
