package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	defaultServerAddr      = ":8080"
	defaultBackendBaseURL  = "https://www.onlineaushadhi.in/myadmin/VendorApis"
	defaultRedisAddr       = "localhost:6379"
	defaultBackendTimeout  = 10 * time.Second
	defaultSessionTTL      = 30 * 24 * time.Hour
	defaultLogLevel        = "debug"
	defaultVendorImageURL  = "https://www.onlineaushadhi.in/myadmin/uploads/vendor/"
	defaultProductImageURL = "https://www.onlineaushadhi.in/myadmin/uploads/product/"
)

type Config struct {
	ServerAddr      string
	BackendBaseURL  string
	RedisAddr       string
	AuthTokenKey    string
	BackendTimeout  time.Duration
	SessionTTL      time.Duration
	LogLevel        string
	VendorImageURL  string
	ProductImageURL string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{
			BackendTimeout: defaultBackendTimeout,
			SessionTTL:     defaultSessionTTL,
		}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddr, "vendor gateway listen address")
		flag.StringVar(&cfg.BackendBaseURL, "b", defaultBackendBaseURL, "admin backend base URL")
		flag.StringVar(&cfg.RedisAddr, "r", defaultRedisAddr, "redis address")
		flag.StringVar(&cfg.AuthTokenKey, "k", "", "auth token key (hex)")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.VendorImageURL, "vendor-images", defaultVendorImageURL, "vendor image base URL")
		flag.StringVar(&cfg.ProductImageURL, "product-images", defaultProductImageURL, "product image base URL")

		flag.Parse()

		// if environment variable is set, then using it
		if addrEnv := os.Getenv("RUN_ADDRESS"); addrEnv != "" {
			cfg.ServerAddr = addrEnv
		}
		if backendEnv := os.Getenv("BACKEND_BASE_URL"); backendEnv != "" {
			cfg.BackendBaseURL = backendEnv
		}
		if redisEnv := os.Getenv("REDIS_ADDRESS"); redisEnv != "" {
			cfg.RedisAddr = redisEnv
		}
		if keyEnv := os.Getenv("AUTH_TOKEN_KEY"); keyEnv != "" {
			cfg.AuthTokenKey = keyEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if timeoutEnv := os.Getenv("BACKEND_TIMEOUT_SECONDS"); timeoutEnv != "" {
			if n, err := strconv.Atoi(timeoutEnv); err == nil && n > 0 {
				cfg.BackendTimeout = time.Duration(n) * time.Second
			}
		}
		if ttlEnv := os.Getenv("SESSION_TTL_HOURS"); ttlEnv != "" {
			if n, err := strconv.Atoi(ttlEnv); err == nil && n > 0 {
				cfg.SessionTTL = time.Duration(n) * time.Hour
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
