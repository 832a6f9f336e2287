package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID         uuid.UUID `db:"id"`
	Email      string    `db:"email"`
	FullName   string    `db:"full_name"`
	Department string    `db:"department"`
	RegNo      string    `db:"reg_no"`
	CreatedAt  time.Time `db:"created_at"`
}
