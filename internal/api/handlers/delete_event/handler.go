package delete_event

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

// Handle DELETE /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil || eventID <= 0 {
		h.logger.Warn("DELETE /events/{eventId} - Invalid event ID: %s", mux.Vars(r)["eventId"])
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("DELETE /events/%d - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("DELETE /events/%d - Failed to delete event: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /events/%d - Event deleted successfully", eventID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
