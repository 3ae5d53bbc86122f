package suggest_times

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

type mockEventRepo struct {
	events []*domain.CalendarEvent
	err    error
}

func (m *mockEventRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.CalendarEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

type mockInstructorRepo struct{}

func (mockInstructorRepo) GetAll(_ context.Context, _ bool) ([]*domain.Instructor, error) {
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func monday() time.Time {
	return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		Date:         monday(),
		Type:         domain.ClassIndividual,
		InstructorID: 1,
		CourtID:      "Pista 1",
		StudentIDs:   []int64{100},
	}
}

func TestExecuteFreeDay(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{}, mockInstructorRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.MaxSuggestedSlots)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "09:30", resp.Slots[0].EndTime.String())
	assert.Equal(t, "09:30", resp.Slots[1].StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[2].StartTime.String())
}

func TestExecuteSkipsBusySlots(t *testing.T) {
	repo := &mockEventRepo{
		events: []*domain.CalendarEvent{
			{
				ID:           1,
				Date:         monday(),
				StartTime:    "08:00",
				EndTime:      "11:00",
				Type:         domain.ClassTraining,
				InstructorID: 1,
				CourtID:      "Pista 2",
				StudentIDs:   []int64{200},
				State:        domain.StateConfirmed,
			},
		},
	}
	uc := NewUseCase(repo, mockInstructorRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.MaxSuggestedSlots)
	assert.Equal(t, "11:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "14:00", resp.Slots[1].StartTime.String())
	assert.Equal(t, "15:30", resp.Slots[2].StartTime.String())
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{}, mockInstructorRepo{}, noopLogger{})

	req := validRequest()
	req.StudentIDs = nil

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteRepositoryError(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{err: errors.New("db down")}, mockInstructorRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
