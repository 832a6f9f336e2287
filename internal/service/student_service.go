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

var ErrStudentNotFound = errors.New("student profile not found")

// StudentStore is the slice of the database layer the student service needs.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName, email, department string) (int64, error)
}

type StudentService struct {
	studentStore StudentStore
	logger       *zap.Logger
}

func NewStudentService(studentStore StudentStore, logger *zap.Logger) *StudentService {
	return &StudentService{
		studentStore: studentStore,
		logger:       logger,
	}
}

func (s *StudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return err
	}

	student := &models.Student{
		ID:         id,
		Email:      req.Email,
		FullName:   req.FullName,
		Department: req.Department,
		RegNo:      req.StudentRegNo,
		CreatedAt:  time.Now(),
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		return err
	}

	s.logger.Info("Student registered", zap.String("student_id", id.String()))
	return nil
}

func (s *StudentService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.StudentProfileResponse, error) {
	student, err := s.studentStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return &dto.StudentProfileResponse{
		ID:           student.ID.String(),
		Email:        student.Email,
		FullName:     student.FullName,
		Department:   student.Department,
		StudentRegNo: student.RegNo,
		CreatedAt:    student.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *StudentService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) error {
	affected, err := s.studentStore.UpdateProfile(ctx, userID, req.Name, req.Email, req.Department)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStudentNotFound
	}

	s.logger.Info("Student profile updated", zap.String("student_id", userID.String()))
	return nil
}
