package report

import "context"

// ReportService delivers computed balances to employees.
type ReportService interface {
	// SendMonthlyStatement emails the period extract of one competency.
	SendMonthlyStatement(ctx context.Context, req SendStatementRequest) (StatementResponse, error)
}
