package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultModel   = "gpt-4o"
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"
	DefaultHotkey  = "Ctrl+Alt+S"
)

type Config struct {
	APIKey            string
	Model             string
	BaseURL           string
	Hotkey            string
	EnableFileLogging bool
	DebugSaveCapture  bool
}

// Load reads configuration from a .env file next to the executable (if any)
// and the process environment. A missing API key is a hard error: the caller
// must abort before showing any UI.
func Load() (*Config, error) {
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	cfg := &Config{
		APIKey:            apiKey,
		Model:             getEnvWithDefault("MODEL", DefaultModel),
		BaseURL:           getEnvWithDefault("API_BASE_URL", DefaultBaseURL),
		Hotkey:            getEnvWithDefault("HOTKEY", DefaultHotkey),
		EnableFileLogging: strings.ToLower(getEnvWithDefault("ENABLE_FILE_LOGGING", "true")) == "true",
		DebugSaveCapture:  strings.ToLower(os.Getenv("DEBUG_SAVE_CAPTURE")) == "true",
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	// Fall back to a .env in the working directory for `go run` style use.
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}

	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
