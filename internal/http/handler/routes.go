package handler

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"appealsapi/internal/model"
	"appealsapi/internal/service"
)

var validate = validator.New()

// statusUpdateRequest is the body accepted by PATCH /representations/:id.
type statusUpdateRequest struct {
	Status                 string  `json:"status" validate:"omitempty,oneof=awaiting_review valid incomplete invalid published"`
	RedactedRepresentation *string `json:"redactedRepresentation" validate:"omitempty,max=65536"`
}

// representationCreated is the body returned after a representation is stored.
type representationCreated struct {
	ID                 int64                      `json:"id"`
	Status             model.RepresentationStatus `json:"status"`
	RepresentationType model.RepresentationType   `json:"representationType"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	submissions service.SubmissionService,
	reps service.RepresentationService,
	docs service.DocumentService,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	integrations := app.Group("/integrations")
	integrations.Post("/appellant-case", IngestAppellantCase(submissions))
	integrations.Post("/lpa-questionnaire", IngestQuestionnaire(submissions))
	integrations.Post("/representation", IngestRepresentation(submissions))

	app.Patch("/representations/:id", UpdateRepresentationStatus(reps))
	app.Get("/cases/:reference/representations", ListCaseRepresentations(reps))
	app.Get("/documents/:guid", GetDocument(docs))
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Checks database connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// IngestAppellantCase godoc
// @Summary Ingest an appellant case
// @Description Creates a new appeal with its parties, folders and documents.
// @Tags integrations
// @Accept json
// @Produce json
// @Success 201 {object} service.CaseResult
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /integrations/appellant-case [post]
func IngestAppellantCase(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.IngestCase(c.UserContext(), c.Body())
		if err != nil {
			return mapError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// IngestQuestionnaire godoc
// @Summary Ingest an LPA questionnaire
// @Description Attaches a planning authority questionnaire to an existing case.
// @Tags integrations
// @Accept json
// @Produce json
// @Success 201 {object} service.QuestionnaireResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /integrations/lpa-questionnaire [post]
func IngestQuestionnaire(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.IngestQuestionnaire(c.UserContext(), c.Body())
		if err != nil {
			return mapError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// IngestRepresentation godoc
// @Summary Ingest a representation
// @Description Stores a comment, statement, final comment or proof of evidence against a case.
// @Tags integrations
// @Accept json
// @Produce json
// @Success 201 {object} representationCreated
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /integrations/representation [post]
func IngestRepresentation(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := svc.IngestRepresentation(c.UserContext(), c.Body())
		if err != nil {
			return mapError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(representationCreated{
			ID:                 rep.ID,
			Status:             rep.Status,
			RepresentationType: rep.Type,
		})
	}
}

// UpdateRepresentationStatus godoc
// @Summary Review a representation
// @Description Changes the status of a representation and optionally stores a redacted text.
// @Tags representations
// @Accept json
// @Produce json
// @Param id path int true "Representation ID"
// @Success 200 {object} service.StatusUpdateResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /representations/{id} [patch]
func UpdateRepresentationStatus(svc service.RepresentationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req statusUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body could not be decoded")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid status update", validationDetails(err)...)
		}

		res, err := svc.UpdateStatus(c.UserContext(), id, model.StatusChange{
			Status:                 model.RepresentationStatus(req.Status),
			RedactedRepresentation: req.RedactedRepresentation,
		})
		if err != nil {
			return mapError(c, err)
		}
		return c.JSON(res)
	}
}

// ListCaseRepresentations godoc
// @Summary List a case's representations
// @Tags representations
// @Produce json
// @Param reference path string true "Case reference"
// @Param limit query int false "Page size"
// @Param offset query int false "Items to skip"
// @Success 200 {object} service.RepresentationListResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /cases/{reference}/representations [get]
func ListCaseRepresentations(svc service.RepresentationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultPageLimit)))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.ListByCase(c.UserContext(), c.Params("reference"), limit, offset)
		if err != nil {
			return mapError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument godoc
// @Summary Get a document
// @Description Returns the latest version of a document with a short-lived download link.
// @Tags documents
// @Produce json
// @Param guid path string true "Document GUID"
// @Success 200 {object} service.DocumentDownload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{guid} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		guid := c.Params("guid")
		if _, err := uuid.Parse(guid); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), guid)
		if err != nil {
			return mapError(c, err)
		}
		return c.JSON(doc)
	}
}

func validationDetails(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, strings.ToLower(fe.Field())+" failed "+fe.Tag())
	}
	return details
}
