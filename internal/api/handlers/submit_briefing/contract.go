package submit_briefing

import (
	"context"

	submitBriefing "github.com/m04kA/astroya-scheduling/internal/usecase/submit_briefing"
)

type SubmitBriefingUseCase interface {
	Execute(ctx context.Context, req *submitBriefing.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
