package create_student

import (
	"errors"
	"net/http"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/students"
	"github.com/padelcore/PCM-ScheduleService/internal/service/students/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "datos del alumno no válidos"
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

// Handle POST /api/v1/students
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /students - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("POST /students - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /students - Failed to create student: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /students - Student created successfully: student_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
