package employee

import "github.com/cmlabs-hris/timebank-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.New(apperror.KindNotFound, "employee not found")
)
