// Package requesttime pins one UTC "now" per request, so the audit
// timestamps and the clock-derived height of a request agree.
package requesttime

import (
	"net/http"
	"time"

	"benefitd/pkg/requestcontext"
)

// Middleware pins the wall clock at request start.
var Middleware = New(time.Now)

// New returns middleware that pins now() at request start.
func New(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), now().UTC())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
