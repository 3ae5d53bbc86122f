package update_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	updateEvent "github.com/padelcore/PCM-ScheduleService/internal/usecase/update_event"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidEventID     = "identificador de clase no válido"
	msgInvalidDateOrTime  = "formato de fecha u hora no válido, se espera YYYY-MM-DD y HH:MM"
	msgInvalidInput       = "datos de la clase no válidos"
	msgEventNotFound      = "clase no encontrada"
	msgEventCancelled     = "la clase está cancelada y no se puede modificar"
)

type Handler struct {
	useCase UpdateEventUseCase
	logger  Logger
}

func NewHandler(useCase UpdateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil || eventID <= 0 {
		h.logger.Warn("PUT /events/{eventId} - Invalid event ID: %s", mux.Vars(r)["eventId"])
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req UpdateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /events/%d - Invalid request body: %v", eventID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(eventID)
	if err != nil {
		h.logger.Warn("PUT /events/%d - Failed to parse request: %v", eventID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateEvent.ErrEventNotFound):
			h.logger.Warn("PUT /events/%d - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, updateEvent.ErrEventCancelled):
			h.logger.Warn("PUT /events/%d - Event is cancelled", eventID)
			handlers.RespondError(w, http.StatusConflict, msgEventCancelled)

		case errors.Is(err, updateEvent.ErrScheduleConflict):
			h.logger.Warn("PUT /events/%d - Schedule conflict: date=%s, instructor=%d, court=%s",
				eventID, req.Date, req.InstructorID, req.CourtID)
			respondConflict(w, err)

		case errors.Is(err, updateEvent.ErrInvalidInput):
			h.logger.Warn("PUT /events/%d - Invalid input: %v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /events/%d - Failed to update event: %v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /events/%d - Event updated successfully", eventID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// respondConflict пишет 409 с полным результатом проверки расписания
func respondConflict(w http.ResponseWriter, err error) {
	var conflictErr *updateEvent.ConflictError
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
