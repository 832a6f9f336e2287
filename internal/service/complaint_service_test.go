package service

import (
	"context"
	"testing"
	"time"

	"campus-desk/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFacultyStore struct {
	byEmail map[string]uuid.UUID
	byID    map[uuid.UUID]*models.Faculty
	updated int64
}

func (f *fakeFacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	if f.byID == nil {
		f.byID = make(map[uuid.UUID]*models.Faculty)
	}
	f.byID[faculty.ID] = faculty
	return nil
}

func (f *fakeFacultyStore) GetByID(_ context.Context, id uuid.UUID) (*models.Faculty, error) {
	faculty, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return faculty, nil
}

func (f *fakeFacultyStore) GetIDByEmail(_ context.Context, email string) (uuid.UUID, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	return id, nil
}

func (f *fakeFacultyStore) UpdateProfile(_ context.Context, _ uuid.UUID, _, _, _, _ string) (int64, error) {
	return f.updated, nil
}

type fakeComplaintStore struct {
	created   []*models.Complaint
	responses []*models.ComplaintResponse
	knownIDs  map[uuid.UUID]bool
	byStudent []*models.StudentComplaint
	byFaculty []*models.FacultyComplaint
}

func (f *fakeComplaintStore) Create(_ context.Context, complaint *models.Complaint) error {
	f.created = append(f.created, complaint)
	return nil
}

func (f *fakeComplaintStore) ListByStudent(_ context.Context, _ uuid.UUID) ([]*models.StudentComplaint, error) {
	return f.byStudent, nil
}

func (f *fakeComplaintStore) ListByFaculty(_ context.Context, _ uuid.UUID) ([]*models.FacultyComplaint, error) {
	return f.byFaculty, nil
}

func (f *fakeComplaintStore) CreateResponse(_ context.Context, response *models.ComplaintResponse) error {
	if !f.knownIDs[response.ComplaintID] {
		return pgx.ErrNoRows
	}
	f.responses = append(f.responses, response)
	return nil
}

func TestComplaintService_Submit_UnknownFaculty(t *testing.T) {
	facultyStore := &fakeFacultyStore{byEmail: map[string]uuid.UUID{}}
	complaintStore := &fakeComplaintStore{}
	svc := NewComplaintService(complaintStore, facultyStore, zap.NewNop())

	_, err := svc.Submit(context.Background(), uuid.New(), "nobody@campus.edu", "broken projector")

	assert.ErrorIs(t, err, ErrFacultyNotFound)
	// No orphaned complaint row
	assert.Empty(t, complaintStore.created)
}

func TestComplaintService_Submit_AttachesLookedUpFaculty(t *testing.T) {
	facultyID := uuid.New()
	facultyStore := &fakeFacultyStore{byEmail: map[string]uuid.UUID{
		"a.verma@campus.edu": facultyID,
	}}
	complaintStore := &fakeComplaintStore{}
	svc := NewComplaintService(complaintStore, facultyStore, zap.NewNop())

	studentID := uuid.New()
	complaint, err := svc.Submit(context.Background(), studentID, "a.verma@campus.edu", "broken projector")

	require.NoError(t, err)
	require.Len(t, complaintStore.created, 1)
	assert.Equal(t, facultyID, complaint.FacultyID)
	assert.Equal(t, studentID, complaint.StudentID)
	assert.Equal(t, models.ComplaintStatusPending, complaint.Status)
}

func TestComplaintService_Reply_RecordsResponse(t *testing.T) {
	complaintID := uuid.New()
	facultyID := uuid.New()
	complaintStore := &fakeComplaintStore{knownIDs: map[uuid.UUID]bool{complaintID: true}}
	svc := NewComplaintService(complaintStore, &fakeFacultyStore{}, zap.NewNop())

	err := svc.Reply(context.Background(), complaintID, facultyID, "fixed, please verify")

	require.NoError(t, err)
	require.Len(t, complaintStore.responses, 1)
	assert.Equal(t, complaintID, complaintStore.responses[0].ComplaintID)
	assert.Equal(t, facultyID, complaintStore.responses[0].FacultyID)
	assert.Equal(t, "fixed, please verify", complaintStore.responses[0].ResponseMessage)
}

func TestComplaintService_Reply_UnknownComplaint(t *testing.T) {
	complaintStore := &fakeComplaintStore{knownIDs: map[uuid.UUID]bool{}}
	svc := NewComplaintService(complaintStore, &fakeFacultyStore{}, zap.NewNop())

	err := svc.Reply(context.Background(), uuid.New(), uuid.New(), "anyone there?")

	assert.ErrorIs(t, err, ErrComplaintNotFound)
	assert.Empty(t, complaintStore.responses)
}

func TestComplaintService_ListForStudent_AnswerFallback(t *testing.T) {
	answered := "resolved last week"
	complaintStore := &fakeComplaintStore{byStudent: []*models.StudentComplaint{
		{
			ID:          uuid.New(),
			Description: "wifi down in hostel B",
			Status:      models.ComplaintStatusPending,
			CreatedAt:   time.Now(),
		},
		{
			ID:              uuid.New(),
			Description:     "lab access card not working",
			Status:          models.ComplaintStatusResolved,
			CreatedAt:       time.Now(),
			ResponseMessage: &answered,
		},
	}}
	svc := NewComplaintService(complaintStore, &fakeFacultyStore{}, zap.NewNop())

	rows, err := svc.ListForStudent(context.Background(), uuid.New())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Waiting for response...", rows[0].Answer)
	assert.Equal(t, answered, rows[1].Answer)
}
