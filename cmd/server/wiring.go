package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"benefitd/internal/admin"
	adminhandler "benefitd/internal/admin/handler"
	adminmemory "benefitd/internal/admin/store/memory"
	adminpostgres "benefitd/internal/admin/store/postgres"
	"benefitd/internal/height"
	httpapi "benefitd/internal/http"
	jwttoken "benefitd/internal/jwt_token"
	"benefitd/internal/platform/config"
	platformmetrics "benefitd/internal/platform/metrics"
	"benefitd/internal/platform/postgres"
	platformredis "benefitd/internal/platform/redis"
	recipienthandler "benefitd/internal/recipient/handler"
	recipientmetrics "benefitd/internal/recipient/metrics"
	recipientmodels "benefitd/internal/recipient/models"
	recipientservice "benefitd/internal/recipient/service"
	recipientstore "benefitd/internal/recipient/store"
	subsidyhandler "benefitd/internal/subsidy/handler"
	subsidymetrics "benefitd/internal/subsidy/metrics"
	subsidymodels "benefitd/internal/subsidy/models"
	subsidyservice "benefitd/internal/subsidy/service"
	subsidystore "benefitd/internal/subsidy/store"
	"benefitd/internal/usage/alerts"
	usagehandler "benefitd/internal/usage/handler"
	usagemetrics "benefitd/internal/usage/metrics"
	usagemodels "benefitd/internal/usage/models"
	usageservice "benefitd/internal/usage/service"
	usagestore "benefitd/internal/usage/store"
	"benefitd/pkg/domain"
	audit "benefitd/pkg/platform/audit"
	"benefitd/pkg/platform/audit/publisher"
	auditkafka "benefitd/pkg/platform/audit/store/kafka"
	auditmemory "benefitd/pkg/platform/audit/store/memory"
	"benefitd/pkg/platform/audit/store/multi"
	auditpostgres "benefitd/pkg/platform/audit/store/postgres"
	authmw "benefitd/pkg/platform/middleware/auth"
	txcontext "benefitd/pkg/platform/tx"
)

// app holds the wired router and everything that must be closed on exit.
type app struct {
	router      http.Handler
	persistence string
	closers     []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// backends are the stores one deployment uses, either all Postgres or all
// in memory.
type backends struct {
	admins     admin.Store
	subsidy    subsidyservice.ParameterStore
	recipients recipientservice.RecipientStore
	criteria   recipientservice.CriteriaStore
	usage      usageservice.UsageStore
	thresholds usageservice.ThresholdStore
	audit      audit.Store
	tx         txcontext.Runner
}

func buildApp(ctx context.Context, cfg config.Server, log *slog.Logger) (*app, error) {
	a := &app{persistence: "memory"}
	health := map[string]httpapi.HealthCheck{}

	b, db, err := openBackends(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if db != nil {
		a.persistence = "postgres"
		a.closers = append(a.closers, func() { _ = db.Close() })
		health["postgres"] = db.PingContext
	}

	auditStore := b.audit
	if len(cfg.Kafka.Brokers) > 0 {
		k, err := auditkafka.New(cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		if err != nil {
			a.close()
			return nil, err
		}
		if err := k.EnsureTopic(ctx, 3, 1); err != nil {
			log.Warn("could not ensure audit topic", "topic", cfg.Kafka.AuditTopic, "error", err)
		}
		a.closers = append(a.closers, k.Close)
		health["kafka"] = k.Health
		auditStore = multi.New(b.audit, k)
	}
	auditPublisher := publisher.NewPublisher(auditStore,
		publisher.WithAsyncBuffer(cfg.AuditBuffer),
		publisher.WithRetry(3, 200*time.Millisecond),
		publisher.WithLogger(log),
	)
	a.closers = append(a.closers, auditPublisher.Close)

	heights, err := buildHeightSource(ctx, cfg, a, health)
	if err != nil {
		a.close()
		return nil, err
	}

	authorities := make(map[admin.Scope]*admin.Authority, len(admin.Scopes))
	initial := map[admin.Scope]string{
		admin.ScopeSubsidy:   cfg.Admins.Subsidy,
		admin.ScopeRecipient: cfg.Admins.Recipient,
		admin.ScopeUsage:     cfg.Admins.Usage,
	}
	for _, scope := range admin.Scopes {
		authority, err := admin.NewAuthority(scope, b.admins)
		if err != nil {
			a.close()
			return nil, err
		}
		principal, err := domain.ParsePrincipal(initial[scope])
		if err != nil {
			a.close()
			return nil, fmt.Errorf("initial %s admin: %w", scope, err)
		}
		if err := authority.Bootstrap(ctx, principal); err != nil {
			a.close()
			return nil, err
		}
		authorities[scope] = authority
	}

	subsidySvc, err := subsidyservice.New(b.subsidy, authorities[admin.ScopeSubsidy],
		subsidyservice.WithLogger(log),
		subsidyservice.WithMetrics(subsidymetrics.New()),
		subsidyservice.WithAuditPublisher(auditPublisher),
		subsidyservice.WithTxRunner(b.tx),
		subsidyservice.WithHeightSource(heights),
	)
	if err != nil {
		a.close()
		return nil, err
	}
	recipientSvc, err := recipientservice.New(b.recipients, b.criteria, authorities[admin.ScopeRecipient], heights,
		recipientservice.WithLogger(log),
		recipientservice.WithMetrics(recipientmetrics.New()),
		recipientservice.WithAuditPublisher(auditPublisher),
		recipientservice.WithTxRunner(b.tx),
		recipientservice.WithVerificationPeriod(cfg.Rules.VerificationPeriod),
	)
	if err != nil {
		a.close()
		return nil, err
	}
	usageOpts := []usageservice.Option{
		usageservice.WithLogger(log),
		usageservice.WithMetrics(usagemetrics.New()),
		usageservice.WithAuditPublisher(auditPublisher),
		usageservice.WithTxRunner(b.tx),
	}
	if cfg.NATS.URL != "" {
		p, err := alerts.Connect(alerts.Config{URL: cfg.NATS.URL, Subject: cfg.NATS.AlertSubject}, log)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = p.Close() })
		health["nats"] = p.Health
		usageOpts = append(usageOpts, usageservice.WithAlertPublisher(p))
	}
	usageSvc, err := usageservice.New(b.usage, b.thresholds, authorities[admin.ScopeUsage], heights, usageOpts...)
	if err != nil {
		a.close()
		return nil, err
	}

	rules := cfg.Rules
	bootErr := subsidySvc.Bootstrap(ctx, subsidymodels.Parameters{
		BaseSubsidy:    rules.BaseSubsidy,
		IncomeFactor:   rules.IncomeFactor,
		HouseholdBonus: rules.HouseholdBonus,
		MaxSubsidy:     rules.MaxSubsidy,
	})
	if bootErr == nil {
		bootErr = recipientSvc.Bootstrap(ctx, recipientmodels.Criteria{
			IncomeThreshold:     rules.IncomeThreshold,
			HouseholdMultiplier: rules.HouseholdMultiplier,
		})
	}
	if bootErr == nil {
		bootErr = usageSvc.Bootstrap(ctx, usagemodels.Thresholds{
			Electricity: rules.ElectricityLimit,
			Water:       rules.WaterLimit,
			Gas:         rules.GasLimit,
		})
	}
	if bootErr != nil {
		a.close()
		return nil, fmt.Errorf("seed rule defaults: %w", bootErr)
	}

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	requireCaller := authmw.RequireCaller(jwtService.CallerValidator(), log)

	a.router = httpapi.NewRouter(httpapi.Deps{
		Logger:   log,
		Metrics:  platformmetrics.New(),
		Gatherer: prometheus.DefaultGatherer,
		Health:   health,
		Modules: []httpapi.RouteRegistrar{
			subsidyhandler.New(subsidySvc, log, requireCaller),
			recipienthandler.New(recipientSvc, log, requireCaller),
			usagehandler.New(usageSvc, log, requireCaller),
			adminhandler.New(log,
				authorities[admin.ScopeSubsidy],
				authorities[admin.ScopeRecipient],
				authorities[admin.ScopeUsage],
			),
		},
	})
	return a, nil
}

func openBackends(ctx context.Context, cfg config.Server) (backends, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		subsidy := subsidystore.NewInMemory()
		recipients := recipientstore.NewInMemory()
		usage := usagestore.NewInMemory()
		return backends{
			admins:     adminmemory.New(),
			subsidy:    subsidy,
			recipients: recipients,
			criteria:   recipients,
			usage:      usage,
			thresholds: usage,
			audit:      auditmemory.NewInMemoryStore(),
			tx:         txcontext.NewMutexRunner(),
		}, nil, nil
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return backends{}, nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return backends{}, nil, err
	}
	recipients := recipientstore.NewPostgres(db)
	usage := usagestore.NewPostgres(db)
	return backends{
		admins:     adminpostgres.New(db),
		subsidy:    subsidystore.NewPostgres(db),
		recipients: recipients,
		criteria:   recipients,
		usage:      usage,
		thresholds: usage,
		audit:      auditpostgres.New(db),
		tx:         txcontext.NewSQLRunner(db),
	}, db, nil
}

// buildHeightSource returns the configured source wrapped so reported heights
// never go backwards.
func buildHeightSource(ctx context.Context, cfg config.Server, a *app, health map[string]httpapi.HealthCheck) (height.Source, error) {
	var src height.Source
	switch cfg.Height.Source {
	case config.HeightSourceManual:
		src = height.NewManual(domain.Height(cfg.Height.Initial))
	case config.HeightSourceClock:
		src = height.NewClock(domain.Height(cfg.Height.GenesisHeight), cfg.Height.GenesisTime, cfg.Height.BlockInterval)
	case config.HeightSourceRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		health["redis"] = client.Health
		src = height.NewRedis(client, cfg.Height.RedisKey)
	default:
		return nil, fmt.Errorf("unknown height source %q", cfg.Height.Source)
	}
	return height.NewMonotonic(src), nil
}
