package timebank

import "github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"

var (
	ErrInvalidPeriod     = apperror.New(apperror.KindValidation, "from must not be after to")
	ErrInvalidCompetency = apperror.New(apperror.KindValidation, "competency must be in YYYY-MM format")
)
