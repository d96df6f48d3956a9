package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultService = "OrderService"
	DefaultHost    = "127.0.0.1"
	DefaultPort    = 14000
)

type Config struct {
	ServicesFile   string
	Service        string
	Host           string
	Port           int
	RequestTimeout time.Duration
	AuthSecret     string
	AuthSubject    string
	LogLevel       string
	LogDev         bool
	MetricsAddr    string
}

// Load reads .env (if any) and the environment. The returned error only
// reports a .env that could not be loaded; the config is usable either way.
func Load() (*Config, error) {
	envErr := godotenv.Load()

	return &Config{
		ServicesFile:   getEnv("WORKLOAD_CONFIG", ""),
		Service:        getEnv("WORKLOAD_SERVICE", DefaultService),
		Host:           getEnv("WORKLOAD_HOST", DefaultHost),
		Port:           getEnvAsInt("WORKLOAD_PORT", DefaultPort),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 0),
		AuthSecret:     getEnv("AUTH_SECRET", ""),
		AuthSubject:    getEnv("AUTH_SUBJECT", "workload-parser"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogDev:         getEnvAsBool("LOG_DEV", false),
		MetricsAddr:    getEnv("METRICS_ADDR", ""),
	}, envErr
}

// BaseURL resolves the target root address. Without a services file the
// fixed port is used; otherwise the port comes from the service's section.
func (c *Config) BaseURL() (string, error) {
	port := c.Port
	if c.ServicesFile != "" {
		services, err := LoadServices(c.ServicesFile)
		if err != nil {
			return "", err
		}
		p, ok := services.Port(c.Service)
		if !ok {
			return "", &ServiceNotFoundError{Service: c.Service, File: c.ServicesFile}
		}
		port = p
	}
	return "http://" + net.JoinHostPort(c.Host, strconv.Itoa(port)), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return d
}
