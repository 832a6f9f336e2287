package handlers

import (
	"errors"
	"fmt"

	"campus-desk/internal/dto"
	"campus-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ComplaintHandler struct {
	complaintService *service.ComplaintService
	logger           *zap.Logger
}

func NewComplaintHandler(complaintService *service.ComplaintService, logger *zap.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		logger:           logger,
	}
}

// Submit godoc
// @Summary Submit a complaint
// @Description File a complaint against a faculty member, looked up by email
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body dto.SubmitComplaintRequest true "Complaint"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/submit-complaint [post]
func (h *ComplaintHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.FacultyEmail == "" || req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "faculty_email and description are required",
		})
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student_id",
		})
	}

	if _, err := h.complaintService.Submit(c.Context(), studentID, req.FacultyEmail, req.Description); err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Faculty with email '%s' not found.", req.FacultyEmail),
			})
		}
		h.logger.Error("Complaint submission failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Complaint sent!",
	})
}

// ListForStudent godoc
// @Summary List a student's complaints
// @Description Complaint history with faculty answers, newest first
// @Tags complaints
// @Produce json
// @Param student_id path string true "Student id"
// @Success 200 {array} dto.StudentComplaintResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/my-complaints/{student_id} [get]
func (h *ComplaintHandler) ListForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student id",
		})
	}

	complaints, err := h.complaintService.ListForStudent(c.Context(), studentID)
	if err != nil {
		h.logger.Error("Failed to list student complaints", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(complaints)
}

// ListForFaculty godoc
// @Summary List complaints assigned to a faculty member
// @Tags complaints
// @Produce json
// @Param faculty_id path string true "Faculty id"
// @Success 200 {array} dto.FacultyComplaintResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/faculty/complaints/{faculty_id} [get]
func (h *ComplaintHandler) ListForFaculty(c *fiber.Ctx) error {
	facultyID, err := uuid.Parse(c.Params("faculty_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid faculty id",
		})
	}

	complaints, err := h.complaintService.ListForFaculty(c.Context(), facultyID)
	if err != nil {
		h.logger.Error("Failed to list faculty complaints", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(complaints)
}

// Reply godoc
// @Summary Reply to a complaint
// @Description Record the faculty response and mark the complaint resolved
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body dto.FacultyReplyRequest true "Reply"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/faculty/reply [post]
func (h *ComplaintHandler) Reply(c *fiber.Ctx) error {
	var req dto.FacultyReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ResponseMessage == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "response_message is required",
		})
	}

	complaintID, err := uuid.Parse(req.ComplaintID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid complaint_id",
		})
	}
	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid faculty_id",
		})
	}

	if err := h.complaintService.Reply(c.Context(), complaintID, facultyID, req.ResponseMessage); err != nil {
		if errors.Is(err, service.ErrComplaintNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Complaint not found",
			})
		}
		h.logger.Error("Failed to record reply", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Reply sent and status updated!",
	})
}
