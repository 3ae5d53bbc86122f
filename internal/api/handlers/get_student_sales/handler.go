package get_student_sales

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/sales"
)

const (
	msgInvalidStudentID = "identificador de alumno no válido"
	msgStudentNotFound  = "alumno no encontrado"
)

type Handler struct {
	service SalesService
	logger  Logger
}

func NewHandler(service SalesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}/sales
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, err := strconv.ParseInt(mux.Vars(r)["studentId"], 10, 64)
	if err != nil || studentID <= 0 {
		h.logger.Warn("GET /students/{studentId}/sales - Invalid student ID: %s", mux.Vars(r)["studentId"])
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	result, err := h.service.GetByStudentID(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrStudentNotFound):
			h.logger.Warn("GET /students/%d/sales - Student not found", studentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		default:
			h.logger.Error("GET /students/%d/sales - Failed to list sales: %v", studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
