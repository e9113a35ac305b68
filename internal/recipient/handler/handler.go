package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"benefitd/internal/admin"
	"benefitd/internal/recipient/models"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	"benefitd/pkg/platform/httputil"
	"benefitd/pkg/requestcontext"
)

// Service defines the registry operations the handler needs.
type Service interface {
	Register(ctx context.Context, caller, identity domain.Principal, income, householdSize int64) (*models.Recipient, error)
	Update(ctx context.Context, caller, identity domain.Principal, income, householdSize int64) (*models.Recipient, error)
	Remove(ctx context.Context, caller, identity domain.Principal) error
	IsEligible(ctx context.Context, identity domain.Principal) (bool, error)
	UpdateCriteria(ctx context.Context, caller domain.Principal, c models.Criteria) error
	Recipient(ctx context.Context, identity domain.Principal) (*models.Recipient, error)
	Criteria(ctx context.Context) (models.CriteriaView, error)
	SetAdmin(ctx context.Context, caller, next domain.Principal) error
	Authorize(ctx context.Context, caller domain.Principal, op string) error
}

// Handler serves the /recipients routes.
type Handler struct {
	service       Service
	logger        *slog.Logger
	requireCaller func(http.Handler) http.Handler
}

func New(service Service, logger *slog.Logger, requireCaller func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, logger: logger, requireCaller: requireCaller}
}

// Register mounts the routes. Static segments are registered ahead of
// {identity} so "criteria" and "admin" never parse as identities.
func (h *Handler) Register(r chi.Router) {
	r.Get("/recipients/criteria", h.handleGetCriteria)
	r.Get("/recipients/{identity}", h.handleGetRecipient)
	r.Get("/recipients/{identity}/eligibility", h.handleEligibility)

	r.Group(func(r chi.Router) {
		if h.requireCaller != nil {
			r.Use(h.requireCaller)
		}
		r.Put("/recipients/criteria", h.handleUpdateCriteria)
		r.Put("/recipients/admin", h.handleSetAdmin)
		r.Post("/recipients", h.handleRegister)
		r.Put("/recipients/{identity}", h.handleUpdate)
		r.Delete("/recipients/{identity}", h.handleRemove)
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "register")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.service.Register(ctx, caller, domain.Principal(req.Identity), *req.IncomeLevel, *req.HouseholdSize)
	if err != nil {
		h.writeServiceError(ctx, w, "register recipient", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "update")
	if !ok {
		return
	}
	identity, err := identityParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.service.Update(ctx, caller, identity, *req.IncomeLevel, *req.HouseholdSize)
	if err != nil {
		h.writeServiceError(ctx, w, "update recipient", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.authorize(w, r, "remove")
	if !ok {
		return
	}
	identity, err := identityParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Remove(ctx, caller, identity); err != nil {
		h.writeServiceError(ctx, w, "remove recipient", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetRecipient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, err := identityParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rec, err := h.service.Recipient(ctx, identity)
	if err != nil {
		h.writeServiceError(ctx, w, "load recipient", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, err := identityParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	eligible, err := h.service.IsEligible(ctx, identity)
	if err != nil {
		h.writeServiceError(ctx, w, "check eligibility", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.EligibilityResponse{
		Identity:   identity.String(),
		IsEligible: eligible,
	})
}

func (h *Handler) handleGetCriteria(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.service.Criteria(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "load eligibility criteria", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleUpdateCriteria(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "update_criteria")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateCriteriaRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c := req.Criteria()
	if err := h.service.UpdateCriteria(ctx, caller, c); err != nil {
		h.writeServiceError(ctx, w, "update eligibility criteria", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
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
		h.writeServiceError(ctx, w, "transfer recipient admin", err)
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

func identityParam(r *http.Request) (domain.Principal, error) {
	return domain.ParsePrincipal(chi.URLParam(r, "identity"))
}
