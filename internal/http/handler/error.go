package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"appealsapi/internal/ingest"
	"appealsapi/internal/logger"
	"appealsapi/internal/model"
	"appealsapi/internal/notify"
	"appealsapi/internal/schema"
	"appealsapi/internal/service"
	"appealsapi/internal/transition"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
// - details: optional list of problems the caller can fix
func writeError(c *fiber.Ctx, status int, code, message string, details ...string) error {
	res := errorPayload{
		RequestID: logger.RequestID(c.UserContext()),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

// mapError translates a service error into the error envelope.
// Anything unrecognised is reported as an internal error.
func mapError(c *fiber.Ctx, err error) error {
	var ve *schema.ValidationError
	var te *transition.Error

	switch {
	case errors.As(err, &ve):
		return writeError(c, fiber.StatusBadRequest, "SCHEMA_REJECT", "payload does not match the "+ve.Kind+" schema", ve.Problems...)
	case errors.Is(err, service.ErrInvalidBody):
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "payload could not be decoded")
	case errors.Is(err, ingest.ErrTooManyCollisions):
		return writeError(c, fiber.StatusUnprocessableEntity, "TOO_MANY_COLLISIONS", "too many documents share a filename")
	case errors.Is(err, ingest.ErrInvalidDocument):
		return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT", "document has no filename")
	case errors.Is(err, model.ErrInvalidPartyLinkage):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PARTY_LINKAGE", model.ErrInvalidPartyLinkage.Error())
	case errors.As(err, &te):
		return writeError(c, fiber.StatusConflict, "ILLEGAL_STATUS_TRANSITION", te.Error())
	case errors.Is(err, service.ErrCaseExists):
		return writeError(c, fiber.StatusConflict, "CASE_EXISTS", "a case with this reference already exists")
	case errors.Is(err, service.ErrQuestionnaireExists):
		return writeError(c, fiber.StatusConflict, "QUESTIONNAIRE_EXISTS", "a questionnaire was already received for this case")
	case errors.Is(err, service.ErrStatusConflict):
		return writeError(c, fiber.StatusConflict, "STATUS_CONFLICT", "representation was changed by another request")
	case errors.Is(err, service.ErrCaseNotFound):
		return writeError(c, fiber.StatusNotFound, "CASE_NOT_FOUND", "case not found")
	case errors.Is(err, service.ErrRepresentationNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "representation not found")
	case errors.Is(err, service.ErrDocumentNotFound), errors.Is(err, service.ErrBlobMissing):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, notify.ErrMissingRecipient):
		return writeError(c, fiber.StatusBadGateway, "MISSING_RECIPIENT", "status saved but the party could not be notified")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
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
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
