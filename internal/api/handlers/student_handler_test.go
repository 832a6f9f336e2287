package handlers

import (
	"net/http"
	"testing"
	"time"

	"campus-desk/internal/models"
	"campus-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newStudentApp(store *stubStudentStore) *fiber.App {
	logger := zap.NewNop()
	svc := service.NewStudentService(store, logger)
	h := NewStudentHandler(svc, logger)

	app := fiber.New()
	app.Post("/api/register-student", h.Register)
	app.Get("/api/student/profile/:user_id", h.GetProfile)
	app.Put("/api/student/profile/:user_id", h.UpdateProfile)
	return app
}

func TestStudentHandler_Register(t *testing.T) {
	store := &stubStudentStore{}
	app := newStudentApp(store)

	id := uuid.New()
	body := `{"id":"` + id.String() + `","email":"priya.n@student.campus.edu","full_name":"Priya Nair","department":"CS","student_reg_no":"CS2023-014"}`
	resp, decoded := doJSON(t, app, http.MethodPost, "/api/register-student", body)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Student created successfully!", decoded["message"])
	assert.Equal(t, "CS2023-014", store.students[id].RegNo)
}

func TestStudentHandler_Register_MissingEmail(t *testing.T) {
	app := newStudentApp(&stubStudentStore{})

	body := `{"id":"` + uuid.New().String() + `","full_name":"Priya Nair"}`
	resp, _ := doJSON(t, app, http.MethodPost, "/api/register-student", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStudentHandler_GetProfile_NotFound(t *testing.T) {
	app := newStudentApp(&stubStudentStore{})

	resp, decoded := doJSON(t, app, http.MethodGet, "/api/student/profile/"+uuid.New().String(), "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Student profile not found", decoded["error"])
}

func TestStudentHandler_GetProfile_Found(t *testing.T) {
	id := uuid.New()
	store := &stubStudentStore{students: map[uuid.UUID]*models.Student{
		id: {
			ID:         id,
			Email:      "priya.n@student.campus.edu",
			FullName:   "Priya Nair",
			Department: "CS",
			RegNo:      "CS2023-014",
			CreatedAt:  time.Now(),
		},
	}}
	app := newStudentApp(store)

	resp, decoded := doJSON(t, app, http.MethodGet, "/api/student/profile/"+id.String(), "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id.String(), decoded["id"])
	assert.Equal(t, "Priya Nair", decoded["full_name"])
	assert.Equal(t, "CS2023-014", decoded["student_reg_no"])
}

func TestStudentHandler_UpdateProfile_NotFound(t *testing.T) {
	app := newStudentApp(&stubStudentStore{updated: 0})

	body := `{"name":"Priya Nair","email":"priya.n@student.campus.edu"}`
	resp, _ := doJSON(t, app, http.MethodPut, "/api/student/profile/"+uuid.New().String(), body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStudentHandler_UpdateProfile_OK(t *testing.T) {
	app := newStudentApp(&stubStudentStore{updated: 1})

	body := `{"name":"Priya Nair","email":"priya.n@student.campus.edu","department":"CS"}`
	resp, decoded := doJSON(t, app, http.MethodPut, "/api/student/profile/"+uuid.New().String(), body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Student profile updated successfully!", decoded["message"])
}
