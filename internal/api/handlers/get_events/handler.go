package get_events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/events"
	"github.com/padelcore/PCM-ScheduleService/internal/service/events/models"
)

const (
	msgInvalidInstructorID = "identificador de profesor no válido"
	msgInvalidFilter       = "filtro de búsqueda no válido"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events
// Query params: from, to (YYYY-MM-DD), instructorId, courtId,
// includeCancelled ("true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListEventsRequest{
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if from := query.Get("from"); from != "" {
		req.From = &from
	}
	if to := query.Get("to"); to != "" {
		req.To = &to
	}
	if courtID := query.Get("courtId"); courtID != "" {
		req.CourtID = &courtID
	}
	if instructorIDStr := query.Get("instructorId"); instructorIDStr != "" {
		instructorID, err := strconv.ParseInt(instructorIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /events - Invalid instructor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInstructorID)
			return
		}
		req.InstructorID = &instructorID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("GET /events - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /events - Failed to list events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events - %d event(s) returned", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
