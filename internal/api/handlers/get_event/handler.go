package get_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/events"
)

const (
	msgInvalidEventID = "identificador de clase no válido"
	msgEventNotFound  = "clase no encontrada"
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

// Handle GET /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil || eventID <= 0 {
		h.logger.Warn("GET /events/{eventId} - Invalid event ID: %s", mux.Vars(r)["eventId"])
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("GET /events/%d - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("GET /events/%d - Failed to get event: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
