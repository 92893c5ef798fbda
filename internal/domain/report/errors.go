package report

import "github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"

var (
	ErrMissingEmail = apperror.New(apperror.KindValidation, "employee has no email address")
)
