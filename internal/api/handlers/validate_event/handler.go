package validate_event

import (
	"net/http"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
)

type Handler struct {
	useCase ValidateEventUseCase
	logger  Logger
}

func NewHandler(useCase ValidateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /events/validate - Failed to validate event: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /events/validate - Validation done: valid=%t, conflicts=%d, warnings=%d",
		result.IsValid, len(result.Conflicts), len(result.Warnings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
