package dto

type RegisterStudentRequest struct {
	ID           string `json:"id" validate:"required,uuid"`
	Email        string `json:"email" validate:"required,email"`
	FullName     string `json:"full_name" validate:"required"`
	Department   string `json:"department"`
	StudentRegNo string `json:"student_reg_no"`
}

type UpdateStudentProfileRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department"`
}

type StudentProfileResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
	StudentRegNo string `json:"student_reg_no"`
	CreatedAt    string `json:"created_at"`
}
