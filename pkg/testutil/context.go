package testutil

import (
	"net/http"

	"benefitd/pkg/domain"
	"benefitd/pkg/requestcontext"
)

// WithCaller attaches caller to the request the way the auth middleware does
// after validating a bearer token. An invalid principal leaves the request
// untouched so tests can reach the missing-caller path.
func WithCaller(req *http.Request, caller string) *http.Request {
	p, err := domain.ParsePrincipal(caller)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithCaller(req.Context(), p))
}
