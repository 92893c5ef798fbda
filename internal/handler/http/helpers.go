package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/response"
)

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// targetEmployee resolves whose data a request reads: the caller by default,
// any employee_id query value for managers.
func targetEmployee(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing access token")
		return "", false
	}

	requested := r.URL.Query().Get("employee_id")
	if requested == "" || requested == id.EmployeeID {
		return id.EmployeeID, true
	}
	if !id.Role.CanManage() {
		response.Forbidden(w, "Cannot access another employee's data")
		return "", false
	}
	return requested, true
}

// callerID returns the verified employee id of the request.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing access token")
		return "", false
	}
	return id.EmployeeID, true
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
