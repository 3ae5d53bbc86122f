package create_instructor

import (
	"errors"
	"net/http"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors"
	"github.com/padelcore/PCM-ScheduleService/internal/service/instructors/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "datos del profesor no válidos"
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

// Handle POST /api/v1/instructors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInstructorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /instructors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInvalidInput):
			h.logger.Warn("POST /instructors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /instructors - Failed to create instructor: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /instructors - Instructor created successfully: instructor_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
