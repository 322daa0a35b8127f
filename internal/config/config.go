package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Kite Connect API configuration
	KiteAPIKey    string `json:"kite_api_key"`
	KiteAPISecret string `json:"kite_api_secret"`
	// Optional pre-generated access token; normally obtained via the
	// login flow and held in memory for the process lifetime.
	KiteAccessToken string `json:"kite_access_token"`
	KiteBaseURL     string `json:"kite_base_url"`

	// LLM configuration for the assistant
	LLMProvider string `json:"llm_provider"`
	ChatModel   string `json:"chat_model"`
	BackendURL  string `json:"backend_url"`
	MaxSteps    int    `json:"max_steps"`

	// AI Model API Keys
	OpenAIAPIKey   string `json:"openai_api_key"`
	DeepSeekAPIKey string `json:"deepseek_api_key"`

	Debug bool `json:"debug"`

	// Eino Debug configuration
	EinoDebugEnabled bool `json:"eino_debug_enabled"`
	EinoDebugPort    int  `json:"eino_debug_port"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		KiteBaseURL: "https://api.kite.trade",

		LLMProvider: "deepseek",
		ChatModel:   "deepseek-chat",
		BackendURL:  "",
		MaxSteps:    40,

		Debug: false,

		EinoDebugEnabled: false,
		EinoDebugPort:    52538,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	// Override with environment variables if they exist
	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("KITE_API_KEY"); val != "" {
		c.KiteAPIKey = val
	}
	if val := os.Getenv("KITE_API_SECRET"); val != "" {
		c.KiteAPISecret = val
	}
	if val := os.Getenv("KITE_ACCESS_TOKEN"); val != "" {
		c.KiteAccessToken = val
	}
	if val := os.Getenv("KITE_BASE_URL"); val != "" {
		c.KiteBaseURL = val
	}

	if val := os.Getenv("LLM_PROVIDER"); val != "" {
		c.LLMProvider = val
	}
	if val := os.Getenv("CHAT_MODEL"); val != "" {
		c.ChatModel = val
	}
	if val := os.Getenv("BACKEND_URL"); val != "" {
		c.BackendURL = val
	}
	if val := os.Getenv("MAX_STEPS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.MaxSteps = v
		}
	}

	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
	}
	if val := os.Getenv("DEEPSEEK_API_KEY"); val != "" {
		c.DeepSeekAPIKey = val
	}

	if val := os.Getenv("KITEBOT_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}

	if val := os.Getenv("EINO_DEBUG_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.EinoDebugEnabled = enabled
		}
	}
	if val := os.Getenv("EINO_DEBUG_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.EinoDebugPort = port
		}
	}
}

// Validate checks that the broker credentials required to talk to the
// Kite Connect API are present.
func (c *Config) Validate() error {
	if c.KiteAPIKey == "" {
		return fmt.Errorf("KITE_API_KEY is required")
	}
	if c.KiteAPISecret == "" {
		return fmt.Errorf("KITE_API_SECRET is required")
	}
	return nil
}

// ValidateLLM checks that an API key is available for the configured
// LLM provider.
func (c *Config) ValidateLLM() error {
	switch c.LLMProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
	case "deepseek":
		if c.DeepSeekAPIKey == "" {
			return fmt.Errorf("DEEPSEEK_API_KEY is required for DeepSeek provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.LLMProvider)
	}
	return nil
}
