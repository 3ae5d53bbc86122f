package update_student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/students"
	"github.com/padelcore/PCM-ScheduleService/internal/service/students/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidStudentID   = "identificador de alumno no válido"
	msgInvalidInput       = "datos del alumno no válidos"
	msgStudentNotFound    = "alumno no encontrado"
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

// Handle PUT /api/v1/students/{studentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.ParseInt(mux.Vars(r)["studentId"], 10, 64)
	if err != nil || studentID <= 0 {
		h.logger.Warn("PUT /students/{studentId} - Invalid student ID: %s", mux.Vars(r)["studentId"])
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	var req models.UpdateStudentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /students/%d - Invalid request body: %v", studentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), studentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("PUT /students/%d - Invalid input: %v", studentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, students.ErrStudentNotFound):
			h.logger.Warn("PUT /students/%d - Student not found", studentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		default:
			h.logger.Error("PUT /students/%d - Failed to update student: %v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /students/%d - Student updated successfully", studentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
