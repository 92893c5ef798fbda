package timeclock

import "github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"

// Punch clock domain errors
var (
	ErrPunchOutOfOrder     = apperror.New(apperror.KindValidation, "punch time must be after the previous punch of the day")
	ErrDayComplete         = apperror.New(apperror.KindConflict, "all four punches for this day are already recorded")
	ErrPunchRecordExists   = apperror.New(apperror.KindConflict, "a punch record already exists for this date")
	ErrConcurrentPunch     = apperror.New(apperror.KindConflict, "punch record was changed by another request, try again")
	ErrPunchRecordNotFound = apperror.New(apperror.KindNotFound, "punch record not found")
)
