package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"benefitd/internal/admin"
	"benefitd/internal/usage/models"
	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	"benefitd/pkg/platform/httputil"
	"benefitd/pkg/requestcontext"
)

// Service defines the usage operations the handler needs.
type Service interface {
	RecordUsage(ctx context.Context, caller domain.Principal, key models.Key, electricity, water, gas int64) (models.Record, error)
	UpdateUsage(ctx context.Context, caller domain.Principal, key models.Key, electricity, water, gas int64) (models.Record, error)
	CheckExcessiveUsage(ctx context.Context, key models.Key) (models.ExcessReport, error)
	UpdateThresholds(ctx context.Context, caller domain.Principal, t models.Thresholds) error
	Thresholds(ctx context.Context) (models.Thresholds, error)
	UsageRecord(ctx context.Context, key models.Key) (models.Record, error)
	SetAdmin(ctx context.Context, caller, next domain.Principal) error
	Authorize(ctx context.Context, caller domain.Principal, op string) error
}

// Handler serves the /usage routes.
type Handler struct {
	service       Service
	logger        *slog.Logger
	requireCaller func(http.Handler) http.Handler
}

func New(service Service, logger *slog.Logger, requireCaller func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, logger: logger, requireCaller: requireCaller}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/usage/thresholds", h.handleGetThresholds)
	r.Get("/usage/{identity}/{period}", h.handleGetRecord)
	r.Get("/usage/{identity}/{period}/excess", h.handleCheckExcess)

	r.Group(func(r chi.Router) {
		if h.requireCaller != nil {
			r.Use(h.requireCaller)
		}
		r.Post("/usage", h.handleRecord)
		r.Put("/usage/thresholds", h.handleUpdateThresholds)
		r.Put("/usage/admin", h.handleSetAdmin)
		r.Put("/usage/{identity}/{period}", h.handleUpdate)
	})
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "record_usage")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.RecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	key := req.Key()
	rec, err := h.service.RecordUsage(ctx, caller, key, *req.Electricity, *req.Water, *req.Gas)
	if err != nil {
		h.writeServiceError(ctx, w, "record usage", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.RecordResponse{Key: key, Record: rec})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "update_usage")
	if !ok {
		return
	}
	key, err := keyParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.service.UpdateUsage(ctx, caller, key, *req.Electricity, *req.Water, *req.Gas)
	if err != nil {
		h.writeServiceError(ctx, w, "update usage", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.RecordResponse{Key: key, Record: rec})
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key, err := keyParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rec, err := h.service.UsageRecord(ctx, key)
	if err != nil {
		h.writeServiceError(ctx, w, "load usage record", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.RecordResponse{Key: key, Record: rec})
}

func (h *Handler) handleCheckExcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key, err := keyParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	report, err := h.service.CheckExcessiveUsage(ctx, key)
	if err != nil {
		h.writeServiceError(ctx, w, "check excessive usage", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.ExcessResponse{Key: key, ExcessReport: report})
}

func (h *Handler) handleGetThresholds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := h.service.Thresholds(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "load usage thresholds", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) handleUpdateThresholds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, ok := h.authorize(w, r, "update_thresholds")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateThresholdsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	t := req.Thresholds()
	if err := h.service.UpdateThresholds(ctx, caller, t); err != nil {
		h.writeServiceError(ctx, w, "update usage thresholds", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
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
		h.writeServiceError(ctx, w, "transfer usage admin", err)
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

func keyParams(r *http.Request) (models.Key, error) {
	recipient, err := domain.ParsePrincipal(chi.URLParam(r, "identity"))
	if err != nil {
		return models.Key{}, err
	}
	period, err := domain.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		return models.Key{}, err
	}
	return models.Key{Recipient: recipient, Period: period}, nil
}
