package create_sale

import (
	"errors"
	"net/http"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	"github.com/padelcore/PCM-ScheduleService/internal/service/sales"
	"github.com/padelcore/PCM-ScheduleService/internal/service/sales/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "datos de la venta no válidos"
	msgStudentNotFound    = "alumno no encontrado"
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

// Handle POST /api/v1/sales
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sales - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrInvalidInput):
			h.logger.Warn("POST /sales - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, sales.ErrStudentNotFound):
			h.logger.Warn("POST /sales - Student not found: student_id=%d", req.StudentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		default:
			h.logger.Error("POST /sales - Failed to create sale: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sales - Sale created successfully: sale_id=%d student_id=%d", result.ID, result.StudentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
