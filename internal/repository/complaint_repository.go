package repository

import (
	"context"

	"campus-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ComplaintRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewComplaintRepository(db *pgxpool.Pool, logger *zap.Logger) *ComplaintRepository {
	return &ComplaintRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := squirrel.Insert("complaints").
		Columns("id", "student_id", "faculty_id", "faculty_email", "description", "status", "created_at").
		Values(complaint.ID, complaint.StudentID, complaint.FacultyID, complaint.FacultyEmail,
			complaint.Description, complaint.Status, complaint.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByStudent returns the student's complaints joined with their responses.
// A complaint with several responses keeps only the earliest one, matching
// what the history page shows.
func (r *ComplaintRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.StudentComplaint, error) {
	query := squirrel.Select("c.id", "c.description", "c.status", "c.created_at", "r.response_message").
		From("complaints c").
		LeftJoin("complaint_responses r ON r.complaint_id = c.id").
		Where(squirrel.Eq{"c.student_id": studentID}).
		OrderBy("c.created_at DESC", "r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[uuid.UUID]bool)
	var results []*models.StudentComplaint
	for rows.Next() {
		var c models.StudentComplaint
		if err := rows.Scan(&c.ID, &c.Description, &c.Status, &c.CreatedAt, &c.ResponseMessage); err != nil {
			return nil, err
		}
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		results = append(results, &c)
	}

	return results, rows.Err()
}

func (r *ComplaintRepository) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.FacultyComplaint, error) {
	query := squirrel.Select(
		"c.id", "c.student_id", "c.faculty_id", "c.faculty_email", "c.description", "c.status", "c.created_at",
		"s.full_name", "s.email").
		From("complaints c").
		LeftJoin("students s ON s.id = c.student_id").
		Where(squirrel.Eq{"c.faculty_id": facultyID}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.FacultyComplaint
	for rows.Next() {
		var c models.FacultyComplaint
		var studentName, studentEmail *string
		if err := rows.Scan(
			&c.ID, &c.StudentID, &c.FacultyID, &c.FacultyEmail, &c.Description, &c.Status, &c.CreatedAt,
			&studentName, &studentEmail,
		); err != nil {
			return nil, err
		}
		if studentName != nil {
			c.StudentName = *studentName
		}
		if studentEmail != nil {
			c.StudentEmail = *studentEmail
		}
		results = append(results, &c)
	}

	return results, rows.Err()
}

// CreateResponse inserts a faculty response and marks the parent complaint
// resolved in a single transaction. Returns pgx.ErrNoRows when the complaint
// does not exist.
func (r *ComplaintRepository) CreateResponse(ctx context.Context, response *models.ComplaintResponse) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		insert := squirrel.Insert("complaint_responses").
			Columns("id", "complaint_id", "faculty_id", "response_message", "created_at").
			Values(response.ID, response.ComplaintID, response.FacultyID, response.ResponseMessage, response.CreatedAt).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		update := squirrel.Update("complaints").
			Set("status", models.ComplaintStatusResolved).
			Where(squirrel.Eq{"id": response.ComplaintID}).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		return nil
	})
}
