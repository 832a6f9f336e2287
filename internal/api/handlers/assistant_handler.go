package handlers

import (
	"errors"

	"campus-desk/internal/dto"
	"campus-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AssistantHandler struct {
	assistantService *service.AssistantService
	logger           *zap.Logger
}

func NewAssistantHandler(assistantService *service.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		logger:           logger,
	}
}

// Ask godoc
// @Summary Ask the campus assistant
// @Description Answer a free-text question, grounded in the uploaded knowledge documents
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/ask-ai [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question is required",
		})
	}

	answer, err := h.assistantService.Ask(c.Context(), req.Question)
	if err != nil {
		if errors.Is(err, service.ErrAssistantUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "API Key missing",
			})
		}
		h.logger.Error("Assistant request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.AskResponse{Answer: answer})
}
