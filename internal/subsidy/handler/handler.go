package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"benefitd/internal/admin"
	"benefitd/internal/subsidy/models"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	"benefitd/pkg/platform/httputil"
	"benefitd/pkg/requestcontext"
)

// Service defines the subsidy operations the handler needs.
type Service interface {
	Calculate(ctx context.Context, income, householdSize int64) (int64, error)
	Parameters(ctx context.Context) (models.Parameters, error)
	UpdateParameters(ctx context.Context, caller domain.Principal, p models.Parameters) error
	SetAdmin(ctx context.Context, caller, next domain.Principal) error
	Authorize(ctx context.Context, caller domain.Principal, op string) error
}

// Handler serves the /subsidy routes.
type Handler struct {
	service       Service
	logger        *slog.Logger
	requireCaller func(http.Handler) http.Handler
}

// New creates a Handler. requireCaller authenticates mutating routes; nil
// leaves them relying on a caller already present in the context.
func New(service Service, logger *slog.Logger, requireCaller func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, logger: logger, requireCaller: requireCaller}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/subsidy/calculate", h.handleCalculate)
	r.Get("/subsidy/parameters", h.handleGetParameters)

	r.Group(func(r chi.Router) {
		if h.requireCaller != nil {
			r.Use(h.requireCaller)
		}
		r.Put("/subsidy/parameters", h.handleUpdateParameters)
		r.Put("/subsidy/admin", h.handleSetAdmin)
	})
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	income, err := httputil.QueryInt64(r, "income")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	size, err := httputil.QueryInt64(r, "household_size")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	amount, err := h.service.Calculate(ctx, income, size)
	if err != nil {
		h.writeServiceError(ctx, w, "calculate subsidy", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.CalculationResponse{
		Income:        income,
		HouseholdSize: size,
		Subsidy:       amount,
	})
}

func (h *Handler) handleGetParameters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := h.service.Parameters(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "load subsidy parameters", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateParameters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "update_parameters")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateParametersRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	p := req.Parameters()
	if err := h.service.UpdateParameters(ctx, caller, p); err != nil {
		h.writeServiceError(ctx, w, "update subsidy parameters", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleSetAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "set_admin")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[admin.TransferRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.SetAdmin(ctx, caller, req.Next()); err != nil {
		h.writeServiceError(ctx, w, "transfer subsidy admin", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorize resolves the authenticated caller and rejects non-admins before
// the request body or path is examined.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, op string) (domain.Principal, bool) {
	ctx := r.Context()
	caller, err := requestcontext.RequireCaller(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	if err := h.service.Authorize(ctx, caller, op); err != nil {
		h.writeServiceError(ctx, w, "authorize "+op, err)
		return "", false
	}
	return caller, true
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "failed to "+op,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
