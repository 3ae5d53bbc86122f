package event

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/ptr"
)

func newEventRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "event_date", "start_time", "end_time", "class_type",
		"instructor_id", "court_id", "student_ids", "state", "created_at", "updated_at",
	})
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO events").
		WithArgs(
			date, "09:00", "10:00", "Individual class",
			int64(1), "Pista 1", pq.Array([]int64{100}), "scheduled",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))

	created, err := repo.Create(context.Background(), &domain.CalendarEvent{
		Date:         date,
		StartTime:    "09:00",
		EndTime:      "10:00",
		Type:         domain.ClassIndividual,
		InstructorID: 1,
		CourtID:      "Pista 1",
		StudentIDs:   []int64{100},
		State:        domain.StateScheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	rows := eventRows().AddRow(
		int64(7), date, "09:00", "10:00", "Group class",
		int64(2), "Pista 2", "{100,101}", "confirmed", now, now,
	)
	mock.ExpectQuery("SELECT .+ FROM events WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, domain.ClassGroup, got.Type)
	assert.Equal(t, "09:00", got.StartTime.String())
	assert.Equal(t, []int64{100, 101}, got.StudentIDs)
	assert.Equal(t, domain.StateConfirmed, got.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM events WHERE id = \\$1").
		WithArgs(int64(404)).
		WillReturnRows(eventRows())

	got, err := repo.GetByID(context.Background(), 404)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByDate(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	rows := eventRows().
		AddRow(int64(1), date, "09:00", "10:00", "Individual class",
			int64(1), "Pista 1", "{100}", "scheduled", now, now).
		AddRow(int64(2), date, "11:00", "12:30", "Training",
			int64(2), "Pista 2", "{101,102}", "confirmed", now, now)

	mock.ExpectQuery("SELECT .+ FROM events WHERE event_date = \\$1 AND state IN .+ ORDER BY start_time ASC").
		WillReturnRows(rows)

	events, err := repo.GetByDate(context.Background(), date)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "09:00", events[0].StartTime.String())
	assert.Equal(t, "11:00", events[1].StartTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByDateEmpty(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM events").
		WillReturnRows(eventRows())

	events, err := repo.GetByDate(context.Background(), time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetWithFilter(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	rows := eventRows().AddRow(
		int64(3), from, "14:00", "15:30", "Academy",
		int64(1), "Pista 1", "{100,101,102}", "scheduled", now, now,
	)

	mock.ExpectQuery("SELECT .+ FROM events WHERE event_date >= \\$1 AND event_date <= \\$2 AND instructor_id = \\$3 AND state <> \\$4 ORDER BY event_date ASC, start_time ASC").
		WithArgs(from, to, int64(1), "cancelled").
		WillReturnRows(rows)

	events, err := repo.GetWithFilter(context.Background(), domain.EventsFilter{
		From:         &from,
		To:           &to,
		InstructorID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ClassAcademy, events[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdate(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	now := time.Now()
	date := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE events SET .+ WHERE id = \\$\\d+ RETURNING created_at, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	updated, err := repo.Update(context.Background(), &domain.CalendarEvent{
		ID:           7,
		Date:         date,
		StartTime:    "11:00",
		EndTime:      "12:30",
		Type:         domain.ClassTraining,
		InstructorID: 2,
		CourtID:      "Pista 3",
		StudentIDs:   []int64{100, 101},
		State:        domain.StateScheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, now, updated.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateNotFound(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE events SET").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	updated, err := repo.Update(context.Background(), &domain.CalendarEvent{ID: 404, StudentIDs: []int64{100}})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateState(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE events SET state = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("cancelled", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateState(context.Background(), 7, domain.StateCancelled)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateStateNotFound(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectExec("UPDATE events SET state").
		WithArgs("cancelled", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateState(context.Background(), 404, domain.StateCancelled)

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryExecError(t *testing.T) {
	repo, mock, cleanup := newEventRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM events").
		WillReturnError(errors.New("connection refused"))

	events, err := repo.GetByDate(context.Background(), time.Now())

	assert.Nil(t, events)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
