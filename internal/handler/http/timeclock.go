package http

import (
	"net/http"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService timeclock.PunchClockService
}

func NewPunchHandler(punchService timeclock.PunchClockService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Clock implements PunchHandler.
func (h *punchHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req timeclock.ClockPunchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	result, err := h.punchService.ClockPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Status implements PunchHandler.
func (h *punchHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := targetEmployee(w, r)
	if !ok {
		return
	}

	result, err := h.punchService.DayStatus(r.Context(), timeclock.DayStatusRequest{
		EmployeeID: employeeID,
		Date:       optionalQuery(r, "date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PunchHandler.
func (h *punchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := targetEmployee(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	result, err := h.punchService.ListPunchRecords(r.Context(), timeclock.ListPunchRecordsRequest{
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

// CreateManual implements PunchHandler.
func (h *punchHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req timeclock.CreateManualPunchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.punchService.CreateManualPunchRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch record created successfully", result)
}
