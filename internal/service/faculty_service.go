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

var ErrFacultyNotFound = errors.New("faculty profile not found")

// FacultyStore is the slice of the database layer the faculty and complaint
// services need.
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error)
	GetIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName, email, department, phone string) (int64, error)
}

type FacultyService struct {
	facultyStore FacultyStore
	logger       *zap.Logger
}

func NewFacultyService(facultyStore FacultyStore, logger *zap.Logger) *FacultyService {
	return &FacultyService{
		facultyStore: facultyStore,
		logger:       logger,
	}
}

func (s *FacultyService) Register(ctx context.Context, req *dto.RegisterFacultyRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return err
	}

	faculty := &models.Faculty{
		ID:         id,
		Email:      req.Email,
		FullName:   req.FullName,
		Department: req.Department,
		CreatedAt:  time.Now(),
	}

	if err := s.facultyStore.Create(ctx, faculty); err != nil {
		return err
	}

	s.logger.Info("Faculty registered", zap.String("faculty_id", id.String()))
	return nil
}

func (s *FacultyService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.FacultyProfileResponse, error) {
	faculty, err := s.facultyStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		return nil, err
	}

	return &dto.FacultyProfileResponse{
		ID:         faculty.ID.String(),
		Email:      faculty.Email,
		FullName:   faculty.FullName,
		Department: faculty.Department,
		Phone:      faculty.Phone,
		CreatedAt:  faculty.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *FacultyService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateFacultyProfileRequest) error {
	affected, err := s.facultyStore.UpdateProfile(ctx, userID, req.Name, req.Email, req.Department, req.Phone)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFacultyNotFound
	}

	s.logger.Info("Faculty profile updated", zap.String("faculty_id", userID.String()))
	return nil
}
