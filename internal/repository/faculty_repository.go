package repository

import (
	"context"

	"campus-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type FacultyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFacultyRepository(db *pgxpool.Pool, logger *zap.Logger) *FacultyRepository {
	return &FacultyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := squirrel.Insert("faculty").
		Columns("id", "email", "full_name", "department", "phone", "created_at").
		Values(faculty.ID, faculty.Email, faculty.FullName, faculty.Department, faculty.Phone, faculty.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *FacultyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error) {
	query := squirrel.Select("id", "email", "full_name", "department", "phone", "created_at").
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var faculty models.Faculty
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&faculty.ID, &faculty.Email, &faculty.FullName, &faculty.Department, &faculty.Phone, &faculty.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &faculty, nil
}

func (r *FacultyRepository) GetIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	query := squirrel.Select("id").
		From("faculty").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *FacultyRepository) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, email, department, phone string) (int64, error) {
	query := squirrel.Update("faculty").
		Set("full_name", fullName).
		Set("email", email).
		Set("department", department).
		Set("phone", phone).
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
