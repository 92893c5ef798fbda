package schedule

import "github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"

var (
	ErrScheduleNotFound = apperror.New(apperror.KindNotFound, "work schedule not found for this employee")
)
