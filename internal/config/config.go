package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the process reads from its environment.
type Config struct {
	DatabaseURL string
	AppPort     string

	AliKey     string
	AliSecret  string
	TrackingID string
	GatewayURL string

	Keywords     []string
	ScanInterval time.Duration
	MaxSalePrice int
	PageSize     int
}

var defaultKeywords = []string{"smart watch", "wireless earbuds", "drone", "gaming accessories"}

// Load reads the configuration from the environment, applying defaults
// for everything except DATABASE_URL.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AppPort:     getEnv("APP_PORT", "8080"),
		AliKey:      os.Getenv("ALI_KEY"),
		AliSecret:   os.Getenv("ALI_SECRET"),
		TrackingID:  getEnv("ALI_TRACKING_ID", "ai_store_bot_v1"),
		GatewayURL:  getEnv("ALI_GATEWAY_URL", "https://api-sg.aliexpress.com/sync"),
		Keywords:    splitKeywords(os.Getenv("SCAN_KEYWORDS")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	interval, err := time.ParseDuration(getEnv("SCAN_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("parsing SCAN_INTERVAL: %w", err)
	}
	cfg.ScanInterval = interval

	cfg.MaxSalePrice, err = getEnvInt("SCAN_MAX_PRICE", 10000)
	if err != nil {
		return nil, err
	}
	cfg.PageSize, err = getEnvInt("SCAN_PAGE_SIZE", 5)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}

func splitKeywords(raw string) []string {
	if raw == "" {
		return defaultKeywords
	}
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return defaultKeywords
	}
	return keywords
}
