package get_instructors

import (
	"net/http"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
)

type Handler struct {
	service InstructorsService
	logger  Logger
}

func NewHandler(service InstructorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors
// Query params: onlyActive ("true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /instructors - Failed to list instructors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
