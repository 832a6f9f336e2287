package models

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "Pending"
	ComplaintStatusResolved ComplaintStatus = "Resolved"
)

type Complaint struct {
	ID           uuid.UUID       `db:"id"`
	StudentID    uuid.UUID       `db:"student_id"`
	FacultyID    uuid.UUID       `db:"faculty_id"`
	FacultyEmail string          `db:"faculty_email"`
	Description  string          `db:"description"`
	Status       ComplaintStatus `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
}

type ComplaintResponse struct {
	ID              uuid.UUID `db:"id"`
	ComplaintID     uuid.UUID `db:"complaint_id"`
	FacultyID       uuid.UUID `db:"faculty_id"`
	ResponseMessage string    `db:"response_message"`
	CreatedAt       time.Time `db:"created_at"`
}

// StudentComplaint is a complaint row joined with its earliest response,
// as listed on the student's history page.
type StudentComplaint struct {
	ID              uuid.UUID
	Description     string
	Status          ComplaintStatus
	CreatedAt       time.Time
	ResponseMessage *string
}

// FacultyComplaint is a complaint row joined with the submitting student's
// name and email, as listed on the faculty dashboard.
type FacultyComplaint struct {
	Complaint
	StudentName  string
	StudentEmail string
}
