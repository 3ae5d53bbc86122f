package suggest_times

import (
	"context"

	suggestTimes "github.com/padelcore/PCM-ScheduleService/internal/usecase/suggest_times"
)

type SuggestTimesUseCase interface {
	Execute(ctx context.Context, req *suggestTimes.Request) (*suggestTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
