package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/arnakr/AeroPark-Service/internal/api/handlers"
)

// Identity headers set by the API gateway after token validation.
// This service trusts them; it never sees the raw tokens.
const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

// RoleOperator marks lot staff and back-office users
const RoleOperator = "operator"

type contextKey string

const (
	userIDKey   contextKey = "userID"
	operatorKey contextKey = "operator"
)

// Logger logging interface
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth reads the gateway identity headers into the request context.
// Requests without identity pass through as anonymous: guest booking
// creation and the payment webhook need no identity at all.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if idStr := r.Header.Get(HeaderUserID); idStr != "" {
				id, err := strconv.ParseInt(idStr, 10, 64)
				if err != nil {
					logger.Warn("auth: malformed %s header: %q", HeaderUserID, idStr)
					handlers.RespondUnauthorized(w, "malformed identity header")
					return
				}
				ctx = context.WithValue(ctx, userIDKey, id)
			}

			if r.Header.Get(HeaderRole) == RoleOperator {
				ctx = context.WithValue(ctx, operatorKey, true)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with 401
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r.Context()); !ok && !IsOperator(r.Context()) {
			handlers.RespondUnauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOperator rejects non-operator requests with 403
func RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsOperator(r.Context()) {
			handlers.RespondForbidden(w, "operator role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated user's ID, if any
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// IsOperator reports whether the caller carries the operator role
func IsOperator(ctx context.Context) bool {
	op, ok := ctx.Value(operatorKey).(bool)
	return ok && op
}
