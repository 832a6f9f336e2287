package handlers

import (
	"errors"

	"campus-desk/internal/dto"
	"campus-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StudentHandler struct {
	studentService *service.StudentService
	logger         *zap.Logger
}

func NewStudentHandler(studentService *service.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		logger:         logger,
	}
}

// Register godoc
// @Summary Register a student
// @Description Create a student row for an identity issued by the external auth platform
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student registration"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/register-student [post]
func (h *StudentHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
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

	if err := h.studentService.Register(c.Context(), &req); err != nil {
		h.logger.Error("Student registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Student created successfully!",
	})
}

// GetProfile godoc
// @Summary Get a student profile
// @Tags students
// @Produce json
// @Param user_id path string true "Student id"
// @Success 200 {object} dto.StudentProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/student/profile/{user_id} [get]
func (h *StudentHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	profile, err := h.studentService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Student profile not found",
			})
		}
		h.logger.Error("Failed to fetch student profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(profile)
}

// UpdateProfile godoc
// @Summary Update a student profile
// @Tags students
// @Accept json
// @Produce json
// @Param user_id path string true "Student id"
// @Param request body dto.UpdateStudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/student/profile/{user_id} [put]
func (h *StudentHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	var req dto.UpdateStudentProfileRequest
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

	if err := h.studentService.UpdateProfile(c.Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Student profile not found",
			})
		}
		h.logger.Error("Failed to update student profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.MessageResponse{
		Message: "Student profile updated successfully!",
	})
}
