package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"waafipay_hpp/internal/domain/entities"
)

const (
	DefaultBaseURL        = "https://sandbox.waafipay.net/asm"
	DefaultPort           = 8080
	DefaultGatewayTimeout = 30 * time.Second
)

// Config is the process configuration, read once from the environment.
//
// Supported env vars:
//   - MERCHANT_UID, STORE_ID, HPP_KEY (merchant credentials)
//   - BASE_URL (default: https://sandbox.waafipay.net/asm)
//   - PORT (default: 8080)
//   - GATEWAY_TIMEOUT (Go duration, default: 30s)
//   - PAYMENT_GATEWAY_MOCK (1/true/yes/on/mock)
type Config struct {
	Merchant       entities.MerchantConfig
	Port           int
	GatewayTimeout time.Duration
	GatewayMock    bool
}

func Load() Config {
	return Config{
		Merchant: entities.MerchantConfig{
			MerchantUID: strings.TrimSpace(os.Getenv("MERCHANT_UID")),
			StoreID:     strings.TrimSpace(os.Getenv("STORE_ID")),
			HppKey:      strings.TrimSpace(os.Getenv("HPP_KEY")),
			BaseURL:     getenvDefault("BASE_URL", DefaultBaseURL),
		},
		Port:           getenvInt("PORT", DefaultPort),
		GatewayTimeout: getenvDuration("GATEWAY_TIMEOUT", DefaultGatewayTimeout),
		GatewayMock:    isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
