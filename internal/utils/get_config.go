package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

const ConfigPathEnv = "CHEFY_CONFIG"

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	AppTimezone  string `yaml:"APP_TIMEZONE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Logging configuration
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`

	// Session defaults
	DefaultLocale      string `yaml:"DEFAULT_LOCALE"`
	DeliveryOffsetDays int    `yaml:"DELIVERY_OFFSET_DAYS"`
	HorizonDays        int    `yaml:"HORIZON_DAYS"`
}

var config = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		AppPort:            "8080",
		AppTimezone:        "Africa/Tunis",
		RateLimitMax:       20,
		LogLevel:           "info",
		LogFile:            "",
		DefaultLocale:      "en",
		DeliveryOffsetDays: 2,
		HorizonDays:        14,
	}
}

// LoadConfig reads the YAML file named by CHEFY_CONFIG (config.yaml when
// unset) over the defaults, then applies environment overrides. A missing
// or malformed file leaves the defaults in place.
func LoadConfig() Config {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		path = "config.yaml"
	}

	cfg := DefaultConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Warnf("error parsing YAML file: %s", err)
		cfg = DefaultConfig()
	}

	applyEnv(&cfg)
	config = cfg
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("APP_PORT"); v != "" {
		cfg.AppPort = v
	}
	if v := os.Getenv("APP_TIMEZONE"); v != "" {
		cfg.AppTimezone = v
	}
	if v := os.Getenv("DEFAULT_LOCALE"); v != "" {
		cfg.DefaultLocale = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v, ok := envInt("DELIVERY_OFFSET_DAYS"); ok {
		cfg.DeliveryOffsetDays = v
	}
	if v, ok := envInt("HORIZON_DAYS"); ok {
		cfg.HorizonDays = v
	}
	if v, ok := envInt("RATE_LIMIT_MAX"); ok {
		cfg.RateLimitMax = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("ignoring %s=%q: %s", key, v, err)
		return 0, false
	}
	return n, true
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_TIMEZONE":
		return config.AppTimezone
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FILE":
		return config.LogFile
	case "DEFAULT_LOCALE":
		return config.DefaultLocale
	case "DELIVERY_OFFSET_DAYS":
		return strconv.Itoa(config.DeliveryOffsetDays)
	case "HORIZON_DAYS":
		return strconv.Itoa(config.HorizonDays)
	default:
		return ""
	}
}
