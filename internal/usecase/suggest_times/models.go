package suggest_times

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
	"github.com/padelcore/PCM-ScheduleService/pkg/types"
)

// Request шаблон события, для которого подбираются свободные слоты.
// Времена начала и конца в шаблоне не указываются - их предлагает подбор.
type Request struct {
	Date         time.Time
	Type         domain.ClassType
	InstructorID int64
	CourtID      string
	StudentIDs   []int64
}

// Slot предложенный слот с предупреждениями проверки расписания
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Warnings  []string
}

// Response модель ответа со свободными слотами
type Response struct {
	Date  time.Time
	Slots []Slot
}
