package dto

type RegisterFacultyRequest struct {
	ID         string `json:"id" validate:"required,uuid"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department"`
}

type UpdateFacultyProfileRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

type FacultyProfileResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	CreatedAt  string `json:"created_at"`
}
