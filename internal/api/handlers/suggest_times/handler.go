package suggest_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
	suggestTimes "github.com/padelcore/PCM-ScheduleService/internal/usecase/suggest_times"
)

const (
	msgMissingDate         = "la fecha es obligatoria"
	msgInvalidDate         = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgInvalidInstructorID = "identificador de profesor no válido"
	msgMissingCourtID      = "la pista es obligatoria"
	msgInvalidStudentIDs   = "lista de alumnos no válida"
	msgInvalidInput        = "datos de la clase no válidos"
)

type Handler struct {
	useCase SuggestTimesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/suggested-times
// Query params: date (required, YYYY-MM-DD), classType, instructorId,
// courtId, studentIds ("100,101")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /events/suggested-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	instructorID, err := strconv.ParseInt(query.Get("instructorId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/suggested-times - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	courtID := query.Get("courtId")
	if courtID == "" {
		h.logger.Warn("GET /events/suggested-times - Missing court ID")
		handlers.RespondBadRequest(w, msgMissingCourtID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("classType"), instructorID, courtID, query.Get("studentIds"))
	if err != nil {
		h.logger.Warn("GET /events/suggested-times - Failed to parse request: %v", err)
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			handlers.RespondBadRequest(w, msgInvalidStudentIDs)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestTimes.ErrInvalidInput):
			h.logger.Warn("GET /events/suggested-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /events/suggested-times - Failed to suggest times: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/suggested-times - %d slot(s) suggested for %s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
