package models

import (
	"time"

	"github.com/google/uuid"
)

type Faculty struct {
	ID         uuid.UUID `db:"id"`
	Email      string    `db:"email"`
	FullName   string    `db:"full_name"`
	Department string    `db:"department"`
	Phone      string    `db:"phone"`
	CreatedAt  time.Time `db:"created_at"`
}
