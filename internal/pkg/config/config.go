package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, merchant key, etc.), security settings
// - default: Values common across all environments (rates, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	Cookie     CookieConfig
	Payment    PaymentConfig
	Pricing    PricingConfig
	DraftStore DraftStoreConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`

	// Proxies allowed to set X-Forwarded-For; empty trusts none.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Bogota"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// PaymentConfig configures the hosted checkout widget. It is passed explicitly
// to the gateway instead of living in browser globals.
type PaymentConfig struct {
	PublicKey       string `envconfig:"EPAYCO_PUBLIC_KEY" required:"true"`
	TestMode        bool   `envconfig:"EPAYCO_TEST_MODE" default:"true"`
	ScriptURL       string `envconfig:"EPAYCO_SCRIPT_URL" default:"https://checkout.epayco.co/checkout.js"`
	ResponseURL     string `envconfig:"EPAYCO_RESPONSE_URL" default:"https://luxiry-hotel.vercel.app/response"`
	ConfirmationURL string `envconfig:"EPAYCO_CONFIRMATION_URL" required:"true"`
	Currency        string `envconfig:"PAYMENT_CURRENCY" default:"COP"`
	Country         string `envconfig:"PAYMENT_COUNTRY" default:"CO"`
	Lang            string `envconfig:"PAYMENT_LANG" default:"es"`
	InvoicePrefix   string `envconfig:"INVOICE_PREFIX" default:"RESERVA"`
	InvoiceStrategy string `envconfig:"INVOICE_STRATEGY" default:"timestamp"` // timestamp | uuid
}

type PricingConfig struct {
	StandardRate   int64 `envconfig:"PRICING_STANDARD_RATE" default:"90000"`
	DeluxeRate     int64 `envconfig:"PRICING_DELUXE_RATE" default:"120000"`
	SuiteRate      int64 `envconfig:"PRICING_SUITE_RATE" default:"150000"`
	ExtraGuestRate int64 `envconfig:"PRICING_EXTRA_GUEST_RATE" default:"20000"`
	IncludedGuests int   `envconfig:"PRICING_INCLUDED_GUESTS" default:"2"`
}

type DraftStoreConfig struct {
	Driver        string        `envconfig:"DRAFT_STORE" default:"memory"` // memory | redis
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL           time.Duration `envconfig:"DRAFT_TTL" default:"2h"`

	// IdempotencyTTL bounds how long a submit can be replayed by its key.
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

type RateLimitConfig struct {
	SubmitPerMinute int           `envconfig:"SUBMIT_RATE_PER_MINUTE" default:"10"`
	Burst           int           `envconfig:"SUBMIT_RATE_BURST" default:"3"`
	IdleTTL         time.Duration `envconfig:"SUBMIT_RATE_IDLE_TTL" default:"10m"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c DraftStoreConfig) UsesRedis() bool {
	return c.Driver == "redis"
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.DraftStore.Driver != "memory" && cfg.DraftStore.Driver != "redis" {
		return Config{}, fmt.Errorf("unsupported DRAFT_STORE %q", cfg.DraftStore.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Bogota",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Payment: PaymentConfig{
			PublicKey:       "test-public-key",
			TestMode:        true,
			ScriptURL:       "https://checkout.epayco.co/checkout.js",
			ResponseURL:     "https://hotel.test/response",
			ConfirmationURL: "https://hotel.test/confirmation",
			Currency:        "COP",
			Country:         "CO",
			Lang:            "es",
			InvoicePrefix:   "RESERVA",
			InvoiceStrategy: "timestamp",
		},
		Pricing: PricingConfig{
			StandardRate:   90000,
			DeluxeRate:     120000,
			SuiteRate:      150000,
			ExtraGuestRate: 20000,
			IncludedGuests: 2,
		},
		DraftStore: DraftStoreConfig{
			Driver:         "memory",
			TTL:            time.Hour,
			IdempotencyTTL: time.Hour,
		},
		RateLimit: RateLimitConfig{
			SubmitPerMinute: 600,
			Burst:           100,
			IdleTTL:         10 * time.Minute,
		},
	}
}
