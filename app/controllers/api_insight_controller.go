package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/braincapital/braincap/internal/pkg/insights"
)

// InsightAPIController serves the insight generation and feedback endpoints
type InsightAPIController struct {
	insights *insights.Service
}

// NewInsightAPIController creates an insight API controller
func NewInsightAPIController(svc *insights.Service) *InsightAPIController {
	return &InsightAPIController{insights: svc}
}

// insightFeedbackRequest is the body of a feedback submission
type insightFeedbackRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// HandleGenerateInsight returns a cached insight for the requested scope or
// generates, persists and returns a new one
func (ct *InsightAPIController) HandleGenerateInsight(c *fiber.Ctx) error {
	var req insights.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	insight, cached, err := ct.insights.GetOrGenerate(&req)
	if err != nil {
		return serverError(c, err)
	}

	status := fiber.StatusCreated
	if cached {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(insight)
}

// HandleGetInsight returns a single insight by ID
func (ct *InsightAPIController) HandleGetInsight(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid insight id")
	}

	insight, err := ct.insights.GetByID(id)
	if err != nil {
		return serverError(c, err)
	}
	if insight == nil {
		return notFound(c, fmt.Sprintf("Insight with ID %d not found", id))
	}

	return c.JSON(insight)
}

// HandleInsightFeedback records a 1-5 star rating on an insight. A repeat
// submission overwrites the previous rating.
func (ct *InsightAPIController) HandleInsightFeedback(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "invalid insight id")
	}

	var req insightFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	insight, err := ct.insights.SubmitFeedback(id, req.Rating)
	if err != nil {
		return serverError(c, err)
	}
	if insight == nil {
		return notFound(c, fmt.Sprintf("Insight with ID %d not found", id))
	}

	return c.JSON(insight)
}
