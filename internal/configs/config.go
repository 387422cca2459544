package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type APIClientConfig struct {
	BaseURL string
}

type SessionConfig struct {
	// File is where the token pair is persisted between runs.
	File string
}

type StdoutLogConfig struct {
	Level string
	JSON  bool
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
	Tag     string
}

type StubConfig struct {
	Addr      string
	JWTSecret string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName       string
	ApiClient     APIClientConfig
	Session       SessionConfig
	StdoutLogger  StdoutLogConfig
	FluentBit     FluentBitConfig
	Stub          StubConfig
	CountDebounce time.Duration
}

// LoadConfig reads configuration from the environment, optionally seeded from
// a .env file. A missing .env is fine; every setting has a usable default.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded (path: %v): %v\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "skidmo-client")
	cfg.ApiClient.BaseURL = getEnvAsString("SKIDMO_API_URL", "http://localhost:8090/api/v1")

	cfg.Session.File = getEnvAsString("SKIDMO_SESSION_FILE", defaultSessionFile())

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.JSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = getEnvAsString("FLUENTBIT_HOST", "localhost")
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
		cfg.FluentBit.Tag = getEnvAsString("FLUENTBIT_TAG", cfg.AppName)
	}

	cfg.Stub.Addr = getEnvAsString("STUB_ADDR", ":8090")
	cfg.Stub.JWTSecret = getEnvAsString("STUB_JWT_SECRET", "dev-only-secret")

	cfg.CountDebounce = time.Duration(getEnvAsInt("COUNT_DEBOUNCE_MS", 500)) * time.Millisecond

	return cfg, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skidmo/session.json"
	}
	return home + "/.skidmo/session.json"
}

func getEnvAsString(name, defaultVal string) string {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := os.Getenv(name)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := os.Getenv(name)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultVal
}
