package get_instructor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors"
)

const (
	msgInvalidInstructorID = "identificador de profesor no válido"
	msgInstructorNotFound  = "profesor no encontrado"
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

// Handle GET /api/v1/instructors/{instructorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := strconv.ParseInt(mux.Vars(r)["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("GET /instructors/{instructorId} - Invalid instructor ID: %s", mux.Vars(r)["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	result, err := h.service.GetByID(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInstructorNotFound):
			h.logger.Warn("GET /instructors/%d - Instructor not found", instructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		default:
			h.logger.Error("GET /instructors/%d - Failed to get instructor: %v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
