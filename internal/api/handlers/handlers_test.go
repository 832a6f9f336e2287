package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-desk/internal/models"
	"campus-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// Shared fakes for the store and AI interfaces, plus request helpers. Each
// handler test wires real services over these fakes, so the tests cover the
// handler and service layers together the way requests actually flow.

type stubStudentStore struct {
	students map[uuid.UUID]*models.Student
	updated  int64
}

func (s *stubStudentStore) Create(_ context.Context, student *models.Student) error {
	if s.students == nil {
		s.students = make(map[uuid.UUID]*models.Student)
	}
	s.students[student.ID] = student
	return nil
}

func (s *stubStudentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return student, nil
}

func (s *stubStudentStore) UpdateProfile(_ context.Context, id uuid.UUID, _, _, _ string) (int64, error) {
	return s.updated, nil
}

type stubFacultyStore struct {
	byEmail map[string]uuid.UUID
	byID    map[uuid.UUID]*models.Faculty
	updated int64
}

func (s *stubFacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	if s.byID == nil {
		s.byID = make(map[uuid.UUID]*models.Faculty)
	}
	s.byID[faculty.ID] = faculty
	return nil
}

func (s *stubFacultyStore) GetByID(_ context.Context, id uuid.UUID) (*models.Faculty, error) {
	faculty, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return faculty, nil
}

func (s *stubFacultyStore) GetIDByEmail(_ context.Context, email string) (uuid.UUID, error) {
	id, ok := s.byEmail[email]
	if !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	return id, nil
}

func (s *stubFacultyStore) UpdateProfile(_ context.Context, _ uuid.UUID, _, _, _, _ string) (int64, error) {
	return s.updated, nil
}

type stubComplaintStore struct {
	created   []*models.Complaint
	responses []*models.ComplaintResponse
	knownIDs  map[uuid.UUID]bool
}

func (s *stubComplaintStore) Create(_ context.Context, complaint *models.Complaint) error {
	s.created = append(s.created, complaint)
	return nil
}

func (s *stubComplaintStore) ListByStudent(_ context.Context, _ uuid.UUID) ([]*models.StudentComplaint, error) {
	return nil, nil
}

func (s *stubComplaintStore) ListByFaculty(_ context.Context, _ uuid.UUID) ([]*models.FacultyComplaint, error) {
	return nil, nil
}

func (s *stubComplaintStore) CreateResponse(_ context.Context, response *models.ComplaintResponse) error {
	if !s.knownIDs[response.ComplaintID] {
		return pgx.ErrNoRows
	}
	s.responses = append(s.responses, response)
	return nil
}

type stubAIClient struct {
	answer        string
	generateCalls int
}

func (s *stubAIClient) UploadFile(_ context.Context, path string) (service.FileHandle, error) {
	return service.FileHandle{URI: "files/" + path, MIMEType: "application/pdf"}, nil
}

func (s *stubAIClient) GenerateAnswer(_ context.Context, _ string, _ []service.FileHandle) (string, error) {
	s.generateCalls++
	if s.answer == "" {
		return "", errors.New("model unavailable")
	}
	return s.answer, nil
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}
