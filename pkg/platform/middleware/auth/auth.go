package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"benefitd/pkg/domain"
	"benefitd/pkg/requestcontext"
)

// JWTValidator defines the interface for validating caller tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are the claims the middleware needs from a validated token.
type JWTClaims struct {
	Caller string
	JTI    string
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireCaller authenticates the bearer token and stores the caller principal
// in the request context. Whether the caller may mutate a rule table is decided
// by the owning service, not here.
func RequireCaller(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)
			clientIP := requestcontext.ClientIP(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
					"client_ip", clientIP,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
					"client_ip", clientIP,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			caller, err := domain.ParsePrincipal(claims.Caller)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid caller",
					"error", err,
					"request_id", requestID,
					"client_ip", clientIP,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithCaller(ctx, caller)))
		})
	}
}
