package update_instructor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors"
	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors/models"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud no válido"
	msgInvalidInstructorID = "identificador de profesor no válido"
	msgInvalidInput        = "datos del profesor no válidos"
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

// Handle PUT /api/v1/instructors/{instructorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := strconv.ParseInt(mux.Vars(r)["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("PUT /instructors/{instructorId} - Invalid instructor ID: %s", mux.Vars(r)["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	var req models.UpdateInstructorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /instructors/%d - Invalid request body: %v", instructorID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), instructorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInvalidInput):
			h.logger.Warn("PUT /instructors/%d - Invalid input: %v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, instructors.ErrInstructorNotFound):
			h.logger.Warn("PUT /instructors/%d - Instructor not found", instructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		default:
			h.logger.Error("PUT /instructors/%d - Failed to update instructor: %v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /instructors/%d - Instructor updated successfully", instructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
