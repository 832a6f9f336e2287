package service

import (
	"context"
	"errors"
	"time"

	"campus-desk/internal/dto"
	"campus-desk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrComplaintNotFound = errors.New("complaint not found")

// waitingAnswer is what the student sees until a faculty member responds.
const waitingAnswer = "Waiting for response..."

// ComplaintStore is the slice of the database layer the complaint service needs.
type ComplaintStore interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.StudentComplaint, error)
	ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.FacultyComplaint, error)
	CreateResponse(ctx context.Context, response *models.ComplaintResponse) error
}

type ComplaintService struct {
	complaintStore ComplaintStore
	facultyStore   FacultyStore
	logger         *zap.Logger
}

func NewComplaintService(complaintStore ComplaintStore, facultyStore FacultyStore, logger *zap.Logger) *ComplaintService {
	return &ComplaintService{
		complaintStore: complaintStore,
		facultyStore:   facultyStore,
		logger:         logger,
	}
}

// Submit looks up the addressed faculty member by email and files the
// complaint against them. The lookup happens first so an unknown email never
// produces an orphaned complaint row.
func (s *ComplaintService) Submit(ctx context.Context, studentID uuid.UUID, facultyEmail, description string) (*models.Complaint, error) {
	facultyID, err := s.facultyStore.GetIDByEmail(ctx, facultyEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}

	complaint := &models.Complaint{
		ID:           uuid.New(),
		StudentID:    studentID,
		FacultyID:    facultyID,
		FacultyEmail: facultyEmail,
		Description:  description,
		Status:       models.ComplaintStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.complaintStore.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info("Complaint submitted",
		zap.String("complaint_id", complaint.ID.String()),
		zap.String("faculty_id", facultyID.String()),
	)

	return complaint, nil
}

func (s *ComplaintService) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*dto.StudentComplaintResponse, error) {
	complaints, err := s.complaintStore.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.StudentComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		answer := waitingAnswer
		if c.ResponseMessage != nil {
			answer = *c.ResponseMessage
		}
		results = append(results, &dto.StudentComplaintResponse{
			Question: c.Description,
			Answer:   answer,
			Status:   string(c.Status),
			Date:     c.CreatedAt.Format(time.RFC3339),
		})
	}

	return results, nil
}

func (s *ComplaintService) ListForFaculty(ctx context.Context, facultyID uuid.UUID) ([]*dto.FacultyComplaintResponse, error) {
	complaints, err := s.complaintStore.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.FacultyComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		results = append(results, &dto.FacultyComplaintResponse{
			ID:           c.ID.String(),
			StudentID:    c.StudentID.String(),
			StudentName:  c.StudentName,
			StudentEmail: c.StudentEmail,
			Description:  c.Description,
			Status:       string(c.Status),
			CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		})
	}

	return results, nil
}

// Reply records the faculty response and resolves the complaint. The store
// performs both writes in one transaction, so a reply either lands fully or
// not at all.
func (s *ComplaintService) Reply(ctx context.Context, complaintID, facultyID uuid.UUID, message string) error {
	response := &models.ComplaintResponse{
		ID:              uuid.New(),
		ComplaintID:     complaintID,
		FacultyID:       facultyID,
		ResponseMessage: message,
		CreatedAt:       time.Now(),
	}

	if err := s.complaintStore.CreateResponse(ctx, response); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrComplaintNotFound
		}
		return err
	}

	s.logger.Info("Complaint resolved",
		zap.String("complaint_id", complaintID.String()),
		zap.String("faculty_id", facultyID.String()),
	)

	return nil
}
