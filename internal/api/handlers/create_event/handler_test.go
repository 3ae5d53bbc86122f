package create_event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/internal/scheduling"
	createEvent "github.com/padelcore/PCM-ScheduleService/internal/usecase/create_event"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

type mockUseCase struct {
	resp *createEvent.Response
	err  error

	gotReq *createEvent.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createEvent.Request) (*createEvent.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func validBody() CreateEventRequest {
	return CreateEventRequest{
		Date:         "2025-09-01",
		StartTime:    "09:00",
		EndTime:      "10:00",
		Type:         string(domain.ClassIndividual),
		InstructorID: 1,
		CourtID:      "Pista 1",
		StudentIDs:   []int64{100},
	}
}

func TestHandleCreatesEvent(t *testing.T) {
	now := time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)
	uc := &mockUseCase{
		resp: &createEvent.Response{
			ID:           42,
			Date:         time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			StartTime:    types.TimeString("09:00"),
			EndTime:      types.TimeString("10:00"),
			Type:         domain.ClassIndividual,
			InstructorID: 1,
			CourtID:      "Pista 1",
			StudentIDs:   []int64{100},
			State:        domain.StateScheduled,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, validBody()))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-09-01", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, string(domain.StateScheduled), resp.State)
	assert.Equal(t, []string{}, resp.Warnings)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, types.TimeString("09:00"), uc.gotReq.StartTime)
	assert.False(t, uc.gotReq.Force)
}

func TestHandleScheduleConflict(t *testing.T) {
	uc := &mockUseCase{
		err: &createEvent.ConflictError{
			Result: &scheduling.ValidationResult{
				Conflicts: []string{"El profesor Carlos Gómez ya tiene una clase programada en este horario"},
				Warnings:  []string{},
			},
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, validBody()))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsValid)
	assert.Equal(t,
		[]string{"El profesor Carlos Gómez ya tiene una clase programada en este horario"},
		resp.Conflicts,
	)
}

func TestHandleBadDate(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, noopLogger{})

	body := validBody()
	body.Date = "01/09/2025"

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandleInvalidBody(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidInput(t *testing.T) {
	uc := &mockUseCase{err: createEvent.ErrInvalidInput}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, validBody()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInternalError(t *testing.T) {
	uc := &mockUseCase{err: errors.New("db down")}
	h := NewHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, validBody()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
