package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

// Identity is the verified caller behind a bearer token.
type Identity struct {
	EmployeeID string
	Role       employee.Role
}

// IdentityFrom returns the identity stored by AuthRequired.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// AuthRequired rejects requests without a valid access token and resolves the
// employee identifier carried by it. It runs after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.Unauthorized(w, "Missing access token")
			return
		}

		tokenType, ok := claims[jwt.ClaimType].(string)
		if !ok || tokenType != "access" {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		employeeID, ok := claims[jwt.ClaimEmployeeID].(string)
		if !ok || employeeID == "" {
			response.Unauthorized(w, "Token carries no employee")
			return
		}
		role, _ := claims[jwt.ClaimRole].(string)

		ctx := WithIdentity(r.Context(), Identity{
			EmployeeID: employeeID,
			Role:       employee.Role(role),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
