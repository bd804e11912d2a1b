package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/cashbookhq/cashbook-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

var ErrCompanyIDRequired = errors.New("company_id claim is missing")

// AuthRequired rejects requests without a verified access token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// CompanyID extracts the tenant claim from the verified token. Every core
// operation receives the company ID explicitly; nothing downstream reads it
// from ambient state.
func CompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", ErrCompanyIDRequired
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", ErrCompanyIDRequired
	}

	return companyID, nil
}
