package handlers

import (
	"errors"

	"campus-desk/internal/dto"
	"campus-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FacultyHandler struct {
	facultyService *service.FacultyService
	logger         *zap.Logger
}

func NewFacultyHandler(facultyService *service.FacultyService, logger *zap.Logger) *FacultyHandler {
	return &FacultyHandler{
		facultyService: facultyService,
		logger:         logger,
	}
}

// Register godoc
// @Summary Register a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.RegisterFacultyRequest true "Faculty registration"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/register-faculty [post]
func (h *FacultyHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ID == "" || req.Email == "" || req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id, email and full_name are required",
		})
	}
	if _, err := uuid.Parse(req.ID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := h.facultyService.Register(c.Context(), &req); err != nil {
		h.logger.Error("Faculty registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Faculty profile created!",
	})
}

// GetProfile godoc
// @Summary Get a faculty profile
// @Tags faculty
// @Produce json
// @Param user_id path string true "Faculty id"
// @Success 200 {object} dto.FacultyProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/faculty/profile/{user_id} [get]
func (h *FacultyHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	profile, err := h.facultyService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Faculty profile not found",
			})
		}
		h.logger.Error("Failed to fetch faculty profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(profile)
}

// UpdateProfile godoc
// @Summary Update a faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Param user_id path string true "Faculty id"
// @Param request body dto.UpdateFacultyProfileRequest true "Profile fields"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/faculty/profile/{user_id} [put]
func (h *FacultyHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	var req dto.UpdateFacultyProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and email are required",
		})
	}

	if err := h.facultyService.UpdateProfile(c.Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Faculty profile not found",
			})
		}
		h.logger.Error("Failed to update faculty profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.MessageResponse{
		Message: "Faculty profile updated successfully!",
	})
}
