package http

import (
	"net/http"

	"github.com/dakoku/timeclock-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// claimEmployeeID reads the caller's employee id from the verified token.
// Handlers pass it down explicitly so services never touch the request
// context for identity.
func claimEmployeeID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}
	return employeeID, nil
}
