package vacation

import "github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"

var (
	ErrVacationRequestNotFound = apperror.New(apperror.KindNotFound, "vacation request not found")
	ErrOverlappingVacation     = apperror.New(apperror.KindConflict, "vacation request overlaps an existing active request")
)
