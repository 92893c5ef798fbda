package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/email"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/utils"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	timebankSvc  timebank.TimebankService
	emailSvc     email.EmailService
}

func NewReportService(employeeRepo employee.EmployeeRepository, timebankSvc timebank.TimebankService, emailSvc email.EmailService) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		timebankSvc:  timebankSvc,
		emailSvc:     emailSvc,
	}
}

// SendMonthlyStatement implements report.ReportService.
func (s *ReportServiceImpl) SendMonthlyStatement(ctx context.Context, req report.SendStatementRequest) (report.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return report.StatementResponse{}, err
	}

	competency, err := timebank.ParseCompetency(req.Competency)
	if err != nil {
		return report.StatementResponse{}, timebank.ErrInvalidCompetency
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.StatementResponse{}, err
	}
	if emp.Email == "" {
		return report.StatementResponse{}, report.ErrMissingEmail
	}

	extract, err := s.timebankSvc.Extract(ctx, emp.ID, competency.FirstDay(), competency.LastDay())
	if err != nil {
		return report.StatementResponse{}, err
	}

	attachment, err := StatementCSV(extract)
	if err != nil {
		return report.StatementResponse{}, fmt.Errorf("failed to build statement csv: %w", err)
	}

	if err := s.emailSvc.SendMonthlyStatement(emp.Email, StatementData(emp, competency, extract), attachment); err != nil {
		return report.StatementResponse{}, fmt.Errorf("failed to send monthly statement: %w", err)
	}

	slog.InfoContext(ctx, "monthly statement sent",
		"employee_id", emp.ID,
		"competency", competency.String(),
	)

	return report.StatementResponse{
		EmployeeID:         emp.ID,
		Competency:         competency.String(),
		SentTo:             emp.Email,
		PeriodTotalMinutes: extract.PeriodTotalMinutes,
		BankedTotalMinutes: extract.BankedTotalMinutes,
		Days:               len(extract.Days),
	}, nil
}

// StatementData summarizes an extract for the email template.
func StatementData(emp employee.Employee, competency timebank.Competency, extract timebank.PeriodExtract) email.MonthlyStatementData {
	expected, worked := 0, 0
	for _, day := range extract.Days {
		expected += day.ExpectedMinutes
		worked += day.WorkedMinutes
	}
	return email.MonthlyStatementData{
		EmployeeName:          emp.FullName,
		Competency:            competency.String(),
		From:                  extract.From.Format(utils.DateLayout),
		To:                    extract.To.Format(utils.DateLayout),
		ExpectedHours:         FormatMinutes(expected),
		WorkedHours:           FormatMinutes(worked),
		PeriodBalance:         FormatSignedMinutes(extract.PeriodTotalMinutes),
		CarriedBalance:        FormatSignedMinutes(extract.CarriedMinutes),
		BankedTotal:           FormatSignedMinutes(extract.BankedTotalMinutes),
		VacationAvailableDays: extract.VacationAvailableDays,
	}
}

// StatementCSV writes one ';' separated row per day.
func StatementCSV(extract timebank.PeriodExtract) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write([]string{"date", "expected_min", "worked_min", "balance_min"}); err != nil {
		return nil, err
	}
	for _, day := range extract.Days {
		row := []string{
			day.Date.Format(utils.DateLayout),
			strconv.Itoa(day.ExpectedMinutes),
			strconv.Itoa(day.WorkedMinutes),
			strconv.Itoa(day.BalanceMinutes),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatMinutes renders minutes as HH:MM.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatSignedMinutes renders minutes as +HH:MM or -HH:MM.
func FormatSignedMinutes(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
	}
	return sign + FormatMinutes(minutes)
}
