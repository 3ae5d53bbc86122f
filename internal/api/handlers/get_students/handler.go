package get_students

import (
	"net/http"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
)

type Handler struct {
	service StudentsService
	logger  Logger
}

func NewHandler(service StudentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students
// Query params: onlyActive ("true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /students - Failed to list students: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
