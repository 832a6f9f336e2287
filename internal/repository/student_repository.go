package repository

import (
	"context"

	"campus-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StudentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewStudentRepository(db *pgxpool.Pool, logger *zap.Logger) *StudentRepository {
	return &StudentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := squirrel.Insert("students").
		Columns("id", "email", "full_name", "department", "reg_no", "created_at").
		Values(student.ID, student.Email, student.FullName, student.Department, student.RegNo, student.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	query := squirrel.Select("id", "email", "full_name", "department", "reg_no", "created_at").
		From("students").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.Email, &student.FullName, &student.Department, &student.RegNo, &student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// UpdateProfile updates the editable profile columns and reports how many
// rows matched, so callers can distinguish a missing student from a no-op.
func (r *StudentRepository) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, email, department string) (int64, error) {
	query := squirrel.Update("students").
		Set("full_name", fullName).
		Set("email", email).
		Set("department", department).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
