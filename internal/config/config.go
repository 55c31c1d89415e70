package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	RelayURL         string
	JWTSecret        string
	PaymentServerKey string
	RedisAddr        string
	KafkaBrokers     []string
	NotifyTimeout    time.Duration
	NotifyWorkers    int
	NotifyQueueSize  int
	ShippingFlatFee  decimal.Decimal
	FreeShippingMin  decimal.Decimal
	ShutdownTimeout  time.Duration
	CORSOrigins      []string
}

// RelayConfig configures the realtime relay process.
type RelayConfig struct {
	Address         string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultRelayAddress    = ":4000"
	defaultRelayURL        = "http://localhost:4000"
	defaultJWTSecret       = "change-me-in-production"
	defaultNotifyTimeout   = 3 * time.Second
	defaultNotifyWorkers   = 4
	defaultNotifyQueueSize = 256
	defaultShippingFee     = "15000"
	defaultFreeShippingMin = "200000"
	defaultShutdownTimeout = 10 * time.Second
	defaultCORSOrigins     = "*"
	dotenvFile             = ".env"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	if err := loadDotenv(dotenvFile); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

// LoadRelay parses the relay process configuration.
func LoadRelay() (*RelayConfig, error) {
	if err := loadDotenv(dotenvFile); err != nil {
		return nil, err
	}
	return loadRelay(os.Args[1:], os.LookupEnv)
}

// loadDotenv fills missing environment variables from path. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		RelayURL:         getString(lookup, "WS_SERVER_URL", defaultRelayURL),
		JWTSecret:        getString(lookup, "JWT_SECRET", defaultJWTSecret),
		PaymentServerKey: getString(lookup, "PAYMENT_SERVER_KEY", ""),
		RedisAddr:        getString(lookup, "REDIS_ADDR", ""),
		NotifyTimeout:    getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
		NotifyWorkers:    getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:  getInt(lookup, "NOTIFY_QUEUE", defaultNotifyQueueSize),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("panganku", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		kafkaStr           = getString(lookup, "KAFKA_BROKERS", "")
		corsStr            = getString(lookup, "CORS_ORIGINS", defaultCORSOrigins)
		shippingFeeStr     = getString(lookup, "SHIPPING_FLAT_FEE", defaultShippingFee)
		freeShippingStr    = getString(lookup, "FREE_SHIPPING_MIN", defaultFreeShippingMin)
		notifyTimeoutStr   = cfg.NotifyTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RelayURL, "ws", cfg.RelayURL, "Realtime relay base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.PaymentServerKey, "payment-key", cfg.PaymentServerKey, "Payment gateway server key for signature checks")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for the order status cache")
	fs.StringVar(&kafkaStr, "kafka", kafkaStr, "Comma separated Kafka brokers for order events")
	fs.StringVar(&notifyTimeoutStr, "notify-timeout", notifyTimeoutStr, "Timeout of a single notification delivery")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.StringVar(&shippingFeeStr, "shipping-fee", shippingFeeStr, "Flat shipping fee")
	fs.StringVar(&freeShippingStr, "free-shipping-min", freeShippingStr, "Subtotal that unlocks free shipping")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&corsStr, "cors", corsStr, "Comma separated allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyTimeout, err = time.ParseDuration(notifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ShippingFlatFee, err = decimal.NewFromString(shippingFeeStr); err != nil {
		return nil, fmt.Errorf("invalid shipping fee: %w", err)
	}

	if cfg.FreeShippingMin, err = decimal.NewFromString(freeShippingStr); err != nil {
		return nil, fmt.Errorf("invalid free shipping minimum: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.KafkaBrokers = splitList(kafkaStr)
	cfg.CORSOrigins = splitList(corsStr)
	cfg.RelayURL = strings.TrimRight(cfg.RelayURL, "/")

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ShippingFlatFee.IsNegative() || cfg.FreeShippingMin.IsNegative() {
		return nil, fmt.Errorf("shipping amounts must not be negative")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func loadRelay(args []string, lookup envLookup) (*RelayConfig, error) {
	cfg := &RelayConfig{
		Address:         getString(lookup, "RELAY_ADDRESS", defaultRelayAddress),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("relay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		corsStr            = getString(lookup, "CORS_ORIGINS", defaultCORSOrigins)
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.Address, "a", cfg.Address, "Relay listen address")
	fs.StringVar(&corsStr, "cors", corsStr, "Comma separated allowed CORS origins")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.CORSOrigins = splitList(corsStr)
	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
