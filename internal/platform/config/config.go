package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "benefitd/pkg/platform/strings"
)

// DefaultAdmin is the admin principal every rule table starts with unless
// overridden.
const DefaultAdmin = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"

// Height source kinds.
const (
	HeightSourceManual = "manual"
	HeightSourceClock  = "clock"
	HeightSourceRedis  = "redis"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	DatabaseURL     string
	Redis           RedisConfig
	Kafka           KafkaConfig
	NATS            NATSConfig
	Auth            AuthConfig
	Admins          AdminConfig
	Height          HeightConfig
	Rules           RulesConfig
	AuditBuffer     int
}

// RedisConfig configures the go-redis client. An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit fan-out. No brokers disables it.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// NATSConfig configures excess usage alerts. An empty URL disables them.
type NATSConfig struct {
	URL          string
	AlertSubject string
}

type AuthConfig struct {
	JWTSigningKey string
	Issuer        string
	Audience      string
}

// AdminConfig holds the initial admin of each rule table. Stored admins win
// over these once a table has been transferred.
type AdminConfig struct {
	Subsidy   string
	Recipient string
	Usage     string
}

type HeightConfig struct {
	Source        string
	Initial       uint64
	GenesisHeight uint64
	GenesisTime   time.Time
	BlockInterval time.Duration
	RedisKey      string
}

// RulesConfig holds the rule-table defaults applied to an empty store.
type RulesConfig struct {
	BaseSubsidy         int64
	IncomeFactor        int64
	HouseholdBonus      int64
	MaxSubsidy          int64
	IncomeThreshold     int64
	HouseholdMultiplier int64
	VerificationPeriod  uint64
	ElectricityLimit    int64
	WaterLimit          int64
	GasLimit            int64
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	r := &reader{}
	cfg := Server{
		Addr:            r.str("BENEFITD_ADDR", ":8080"),
		LogLevel:        r.str("BENEFITD_LOG_LEVEL", "info"),
		LogFormat:       r.str("BENEFITD_LOG_FORMAT", "json"),
		ShutdownTimeout: r.duration("BENEFITD_SHUTDOWN_TIMEOUT", 10*time.Second),
		DatabaseURL:     r.str("BENEFITD_DATABASE_URL", ""),
		Redis: RedisConfig{
			URL:          r.str("BENEFITD_REDIS_URL", ""),
			PoolSize:     r.integer("BENEFITD_REDIS_POOL_SIZE", 10),
			MinIdleConns: r.integer("BENEFITD_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  r.duration("BENEFITD_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  r.duration("BENEFITD_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: r.duration("BENEFITD_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    r.list("BENEFITD_KAFKA_BROKERS"),
			AuditTopic: r.str("BENEFITD_KAFKA_AUDIT_TOPIC", "benefitd.audit"),
		},
		NATS: NATSConfig{
			URL:          r.str("BENEFITD_NATS_URL", ""),
			AlertSubject: r.str("BENEFITD_NATS_ALERT_SUBJECT", "benefitd.usage.excessive"),
		},
		Auth: AuthConfig{
			// Use a default for development - should be overridden in production
			JWTSigningKey: r.str("BENEFITD_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			Issuer:        r.str("BENEFITD_JWT_ISSUER", "benefitd"),
			Audience:      r.str("BENEFITD_JWT_AUDIENCE", "benefitd"),
		},
		Admins: AdminConfig{
			Subsidy:   r.str("BENEFITD_SUBSIDY_ADMIN", DefaultAdmin),
			Recipient: r.str("BENEFITD_RECIPIENT_ADMIN", DefaultAdmin),
			Usage:     r.str("BENEFITD_USAGE_ADMIN", DefaultAdmin),
		},
		Height: HeightConfig{
			Source:        r.str("BENEFITD_HEIGHT_SOURCE", HeightSourceClock),
			Initial:       r.uint("BENEFITD_HEIGHT_INITIAL", 0),
			GenesisHeight: r.uint("BENEFITD_HEIGHT_GENESIS", 0),
			GenesisTime:   r.time("BENEFITD_HEIGHT_GENESIS_TIME", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			BlockInterval: r.duration("BENEFITD_HEIGHT_BLOCK_INTERVAL", time.Second),
			RedisKey:      r.str("BENEFITD_HEIGHT_REDIS_KEY", "chain:height"),
		},
		Rules: RulesConfig{
			BaseSubsidy:         r.int64("BENEFITD_BASE_SUBSIDY", 100),
			IncomeFactor:        r.int64("BENEFITD_INCOME_FACTOR", 10),
			HouseholdBonus:      r.int64("BENEFITD_HOUSEHOLD_BONUS", 25),
			MaxSubsidy:          r.int64("BENEFITD_MAX_SUBSIDY", 500),
			IncomeThreshold:     r.int64("BENEFITD_INCOME_THRESHOLD", 50000),
			HouseholdMultiplier: r.int64("BENEFITD_HOUSEHOLD_MULTIPLIER", 10000),
			VerificationPeriod:  r.uint("BENEFITD_VERIFICATION_PERIOD", 31536000),
			ElectricityLimit:    r.int64("BENEFITD_ELECTRICITY_THRESHOLD", 500),
			WaterLimit:          r.int64("BENEFITD_WATER_THRESHOLD", 15000),
			GasLimit:            r.int64("BENEFITD_GAS_THRESHOLD", 100),
		},
		AuditBuffer: r.integer("BENEFITD_AUDIT_BUFFER", 1024),
	}
	if r.err != nil {
		return Server{}, r.err
	}
	if err := cfg.validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func (c Server) validate() error {
	switch c.Height.Source {
	case HeightSourceManual, HeightSourceClock:
	case HeightSourceRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("BENEFITD_REDIS_URL is required for the redis height source")
		}
	default:
		return fmt.Errorf("unknown height source %q", c.Height.Source)
	}
	if c.Height.BlockInterval <= 0 {
		return fmt.Errorf("BENEFITD_HEIGHT_BLOCK_INTERVAL must be positive")
	}
	if c.Rules.VerificationPeriod == 0 {
		return fmt.Errorf("BENEFITD_VERIFICATION_PERIOD must be positive")
	}
	return nil
}

// reader collects the first parse error so FromEnv reports one problem.
type reader struct {
	err error
}

func (r *reader) str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) list(key string) []string {
	return platformstrings.SplitList(os.Getenv(key), ",")
}

func (r *reader) integer(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return v
}

func (r *reader) int64(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return v
}

func (r *reader) uint(key string, def uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return v
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return v
}

func (r *reader) time(key string, def time.Time) time.Time {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		r.fail(key, err)
		return def
	}
	return v
}

func (r *reader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid %s: %w", key, err)
	}
}
