package cancel_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/events"
)

const (
	msgInvalidEventID   = "identificador de clase no válido"
	msgEventNotFound    = "clase no encontrada"
	msgAlreadyCancelled = "la clase ya está cancelada"
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

// Handle PATCH /api/v1/events/{eventId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil || eventID <= 0 {
		h.logger.Warn("PATCH /events/{eventId}/cancel - Invalid event ID: %s", mux.Vars(r)["eventId"])
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.Cancel(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("PATCH /events/%d/cancel - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /events/%d/cancel - Event already cancelled", eventID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /events/%d/cancel - Failed to cancel event: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /events/%d/cancel - Event cancelled successfully", eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
