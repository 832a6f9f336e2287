package dto

type SubmitComplaintRequest struct {
	StudentID    string `json:"student_id" validate:"required,uuid"`
	FacultyEmail string `json:"faculty_email" validate:"required,email"`
	Description  string `json:"description" validate:"required"`
}

type FacultyReplyRequest struct {
	ComplaintID     string `json:"complaint_id" validate:"required,uuid"`
	FacultyID       string `json:"faculty_id" validate:"required,uuid"`
	ResponseMessage string `json:"response_message" validate:"required"`
}

// StudentComplaintResponse is a history row on the student side. The answer
// falls back to a waiting placeholder until a faculty response exists.
type StudentComplaintResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

type FacultyComplaintResponse struct {
	ID           string `json:"id"`
	StudentID    string `json:"student_id"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
