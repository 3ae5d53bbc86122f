package create_event

import (
	"errors"
	"net/http"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	createEvent "github.com/padelcore/PCM-ScheduleService/internal/usecase/create_event"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDateOrTime  = "formato de fecha u hora no válido, se espera YYYY-MM-DD y HH:MM"
	msgInvalidInput       = "datos de la clase no válidos"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /events - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEvent.ErrScheduleConflict):
			h.logger.Warn("POST /events - Schedule conflict: date=%s, instructor=%d, court=%s",
				req.Date, req.InstructorID, req.CourtID)
			respondConflict(w, err)

		case errors.Is(err, createEvent.ErrInvalidInput):
			h.logger.Warn("POST /events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events - Failed to create event: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events - Event created successfully: event_id=%d, date=%s", result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondConflict пишет 409 с полным результатом проверки расписания
func respondConflict(w http.ResponseWriter, err error) {
	var conflictErr *createEvent.ConflictError
	if !errors.As(err, &conflictErr) {
		handlers.RespondError(w, http.StatusConflict, msgInvalidInput)
		return
	}

	handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
		IsValid:   false,
		Conflicts: conflictErr.Result.Conflicts,
		Warnings:  conflictErr.Result.Warnings,
	})
}
