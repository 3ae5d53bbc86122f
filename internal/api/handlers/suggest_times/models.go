package suggest_times

import (
	"strconv"
	"strings"
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	suggestTimes "github.com/padelcore/PCM-ScheduleService/internal/usecase/suggest_times"
)

// SuggestedTimesResponse HTTP response model
type SuggestedTimesResponse struct {
	Date  string          `json:"date"`
	Slots []SuggestedSlot `json:"slots"`
}

// SuggestedSlot модель предложенного слота
type SuggestedSlot struct {
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Warnings  []string `json:"warnings"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, classType string, instructorID int64, courtID, studentIDsStr string) (*suggestTimes.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	studentIDs, err := parseStudentIDs(studentIDsStr)
	if err != nil {
		return nil, err
	}

	return &suggestTimes.Request{
		Date:         date,
		Type:         domain.ClassType(classType),
		InstructorID: instructorID,
		CourtID:      courtID,
		StudentIDs:   studentIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestTimes.Response) *SuggestedTimesResponse {
	slots := make([]SuggestedSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		warnings := slot.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		slots[i] = SuggestedSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Warnings:  warnings,
		}
	}

	return &SuggestedTimesResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// parseStudentIDs разбирает список ID учеников из query параметра
// вида "100,101,102"
func parseStudentIDs(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
