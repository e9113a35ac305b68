package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"benefitd/internal/admin"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	"benefitd/pkg/platform/httputil"
	"benefitd/pkg/requestcontext"
)

// Reader reports the admin of one scope.
type Reader interface {
	Scope() admin.Scope
	Current(ctx context.Context) (domain.Principal, error)
}

// Response is the JSON view of a scope's admin.
type Response struct {
	Scope string `json:"scope"`
	Admin string `json:"admin"`
}

// Handler exposes read-only admin lookups. Transfers live on each module's
// own routes because they run inside that module's transaction.
type Handler struct {
	readers map[admin.Scope]Reader
	logger  *slog.Logger
}

func New(logger *slog.Logger, readers ...Reader) *Handler {
	m := make(map[admin.Scope]Reader, len(readers))
	for _, r := range readers {
		m[r.Scope()] = r
	}
	return &Handler{readers: m, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/admins/{scope}", h.handleGetAdmin)
}

func (h *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	scope, err := admin.ParseScope(chi.URLParam(r, "scope"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	reader, ok := h.readers[scope]
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "scope not served"))
		return
	}
	current, err := reader.Current(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load admin",
			"request_id", requestID,
			"scope", scope,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, Response{Scope: string(scope), Admin: current.String()})
}
