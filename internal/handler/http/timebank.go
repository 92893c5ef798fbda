package http

import (
	"net/http"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/response"
)

type TimebankHandler interface {
	Extract(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
	SendStatement(w http.ResponseWriter, r *http.Request)
}

type timebankHandlerImpl struct {
	timebankService timebank.TimebankService
	reportService   report.ReportService
}

func NewTimebankHandler(timebankService timebank.TimebankService, reportService report.ReportService) TimebankHandler {
	return &timebankHandlerImpl{
		timebankService: timebankService,
		reportService:   reportService,
	}
}

// Extract implements TimebankHandler.
func (h *timebankHandlerImpl) Extract(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := targetEmployee(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	result, err := h.timebankService.PeriodExtract(r.Context(), timebank.PeriodExtractRequest{
		EmployeeID: employeeID,
		From:       query.Get("from"),
		To:         query.Get("to"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Recompute implements TimebankHandler.
func (h *timebankHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	var req timebank.RecomputeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.timebankService.RecomputeMonthlyBank(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly bank recomputed", result)
}

// SendStatement implements TimebankHandler.
func (h *timebankHandlerImpl) SendStatement(w http.ResponseWriter, r *http.Request) {
	var req report.SendStatementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.reportService.SendMonthlyStatement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly statement sent", result)
}
