package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	eventRepo "github.com/padelcore/PCM-ScheduleService/internal/infra/storage/event"
	"github.com/padelcore/PCM-ScheduleService/internal/service/events/models"
	"github.com/padelcore/PCM-ScheduleService/pkg/ptr"
)

type mockEventRepo struct {
	byID      map[int64]*domain.CalendarEvent
	filtered  []*domain.CalendarEvent
	lastState domain.EventState
	deleted   []int64

	lastFilter domain.EventsFilter
}

func (m *mockEventRepo) GetByID(_ context.Context, id int64) (*domain.CalendarEvent, error) {
	event, ok := m.byID[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	return event, nil
}

func (m *mockEventRepo) GetWithFilter(_ context.Context, filter domain.EventsFilter) ([]*domain.CalendarEvent, error) {
	m.lastFilter = filter
	return m.filtered, nil
}

func (m *mockEventRepo) UpdateState(_ context.Context, id int64, state domain.EventState) error {
	if _, ok := m.byID[id]; !ok {
		return eventRepo.ErrEventNotFound
	}
	m.lastState = state
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return eventRepo.ErrEventNotFound
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func storedEvent() *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ID:           7,
		Date:         time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "10:00",
		Type:         domain.ClassIndividual,
		InstructorID: 1,
		CourtID:      "Pista 1",
		StudentIDs:   []int64{100},
		State:        domain.StateScheduled,
	}
}

func TestGetByID(t *testing.T) {
	repo := &mockEventRepo{byID: map[int64]*domain.CalendarEvent{7: storedEvent()}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-09-01", resp.Date)
	assert.Equal(t, "Individual class", resp.Type)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(&mockEventRepo{byID: map[int64]*domain.CalendarEvent{}}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 404)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListParsesPeriod(t *testing.T) {
	repo := &mockEventRepo{filtered: []*domain.CalendarEvent{storedEvent()}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListEventsRequest{
		From:         ptr.Ptr("2025-09-01"),
		To:           ptr.Ptr("2025-09-07"),
		InstructorID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastFilter.From)
	assert.Equal(t, "2025-09-01", repo.lastFilter.From.Format(domain.DateFormat))
	assert.False(t, repo.lastFilter.IncludeCancelled)
}

func TestListRejectsBadDate(t *testing.T) {
	svc := NewService(&mockEventRepo{}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListEventsRequest{
		From: ptr.Ptr("01/09/2025"),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := &mockEventRepo{byID: map[int64]*domain.CalendarEvent{7: storedEvent()}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Cancel(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.State)
	assert.Equal(t, domain.StateCancelled, repo.lastState)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	cancelled := storedEvent()
	cancelled.State = domain.StateCancelled
	svc := NewService(&mockEventRepo{byID: map[int64]*domain.CalendarEvent{7: cancelled}}, noopLogger{})

	resp, err := svc.Cancel(context.Background(), 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestDelete(t *testing.T) {
	repo := &mockEventRepo{byID: map[int64]*domain.CalendarEvent{7: storedEvent()}}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrEventNotFound)
}
