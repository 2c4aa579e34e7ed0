package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server
	Cache
	Workers
	Merchant
	Gateway
}

type Server struct {
	Port string
}

type Cache struct {
	Host     string
	Port     string
	Password string
}

type Workers struct {
	StatusCount      int
	StatusBufferSize int
}

type Merchant struct {
	ID            string
	Secret        string
	PublicBaseURL string
	AllowDemo     bool
}

type Gateway struct {
	URL            string
	TimeoutSeconds int
}

func NewConfig() *Config {
	return &Config{
		Server: Server{
			Port: getEnvString("SERVER_PORT", "8080"),
		},
		Cache: Cache{
			Host:     getEnvString("CACHE_HOST", "localhost"),
			Port:     getEnvString("CACHE_PORT", "6379"),
			Password: getEnvString("CACHE_PASSWORD", ""),
		},
		Workers: Workers{
			StatusCount:      getEnvInt("STATUS_WORKERS_COUNT", 4),
			StatusBufferSize: getEnvInt("STATUS_EVENTS_BUFFER_SIZE", 256),
		},
		Merchant: Merchant{
			ID:            getEnvString("MERCHANT_ID", ""),
			Secret:        getEnvString("MERCHANT_SECRET", ""),
			PublicBaseURL: getEnvString("PUBLIC_BASE_URL", ""),
			AllowDemo:     getEnvBool("ALLOW_DEMO_CREDENTIALS", false),
		},
		Gateway: Gateway{
			URL:            getEnvString("GATEWAY_URL", "http://localhost:8081"),
			TimeoutSeconds: getEnvInt("GATEWAY_TIMEOUT_SECONDS", 10),
		},
	}
}

// Validate enforces merchant credentials. With ALLOW_DEMO_CREDENTIALS set,
// missing values fall back to demo credentials instead of failing startup.
func (c *Config) Validate() error {
	if c.Merchant.ID != "" && c.Merchant.Secret != "" {
		return nil
	}

	if !c.Merchant.AllowDemo {
		return fmt.Errorf("MERCHANT_ID and MERCHANT_SECRET are required")
	}

	if c.Merchant.ID == "" {
		c.Merchant.ID = "demo-merchant"
	}
	if c.Merchant.Secret == "" {
		c.Merchant.Secret = "demo-secret"
	}

	return nil
}

func getEnvString(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}
