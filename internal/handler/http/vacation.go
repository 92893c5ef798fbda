package http

import (
	"net/http"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VacationHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &vacationHandlerImpl{
		vacationService: vacationService,
	}
}

// Balance implements VacationHandler.
func (h *vacationHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := targetEmployee(w, r)
	if !ok {
		return
	}

	result, err := h.vacationService.GetBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements VacationHandler. Requests are always filed for the caller.
func (h *vacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req vacation.CreateVacationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	result, err := h.vacationService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request created successfully", result)
}

// List implements VacationHandler. Managers see every request unless they
// filter by employee_id.
func (h *vacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing access token")
		return
	}

	var filter *string
	if id.Role.CanManage() {
		filter = optionalQuery(r, "employee_id")
	} else {
		employeeID, ok := targetEmployee(w, r)
		if !ok {
			return
		}
		filter = &employeeID
	}

	result, err := h.vacationService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements VacationHandler.
func (h *vacationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject implements VacationHandler.
func (h *vacationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *vacationHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	result, err := h.vacationService.DecideRequest(r.Context(), vacation.DecideVacationRequest{
		RequestID: chi.URLParam(r, "id"),
		Approve:   approve,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request "+string(result.Status), result)
}
