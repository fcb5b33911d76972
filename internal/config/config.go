package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`
	Redis  RedisConfig  `json:"redis"`
	OpenAI OpenAIConfig `json:"openai"`
	Gate   GateConfig   `json:"gate"`
	Quota  QuotaConfig  `json:"quota"`
}

type ServerConfig struct {
	Port        string `json:"port"`
	Environment string `json:"environment"`
}

type RedisConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// GetRedisAddr returns host:port, or "" when redis is not configured.
func (r RedisConfig) GetRedisAddr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

type OpenAIConfig struct {
	APIKey          string `json:"-"`
	ChatModel       string `json:"chat_model"`
	VisionModel     string `json:"vision_model"`
	VisionMaxTokens int    `json:"vision_max_tokens"`
}

type GateConfig struct {
	AllowedOrigin string   `json:"allowed_origin"`
	BlockedAgents []string `json:"blocked_agents"`
}

type QuotaConfig struct {
	FreeLimit     int `json:"free_limit"`
	FreePerMinute int `json:"free_per_minute"`
	ProPerMinute  int `json:"pro_per_minute"`
}

// Load reads the optional JSON config file and applies environment
// overrides on top. A missing file is not an error - defaults apply.
func Load(path string) (*Config, error) {
	cfg := defaults()

	file, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "5000",
			Environment: "development",
		},
		Redis: RedisConfig{
			Port: "6379",
		},
		OpenAI: OpenAIConfig{
			ChatModel:       "gpt-4o-mini",
			VisionModel:     "gpt-4o",
			VisionMaxTokens: 500,
		},
		Gate: GateConfig{
			AllowedOrigin: "https://lazy-gpt.webflow.io",
			BlockedAgents: []string{
				"curl", "python", "aiohttp", "wget",
				"httpclient", "go-http", "scrapy", "headless",
			},
		},
		Quota: QuotaConfig{
			FreeLimit:     3,
			FreePerMinute: 5,
			ProPerMinute:  30,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Server.Environment = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_CHAT_MODEL"); v != "" {
		cfg.OpenAI.ChatModel = v
	}
	if v := os.Getenv("OPENAI_VISION_MODEL"); v != "" {
		cfg.OpenAI.VisionModel = v
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		cfg.Gate.AllowedOrigin = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("FREE_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.Quota.FreeLimit = limit
		}
	}
}
