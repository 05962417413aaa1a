package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// AIConfig selects and configures the summary-generation backend.
type AIConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "ollama"
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"baseURL"`
	APIKey    string `yaml:"apiKey"`
	OllamaURL string `yaml:"ollamaURL"`
}

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	Port             string   `yaml:"port"`
	LogLevel         string   `yaml:"logLevel"`
	DatabaseURL      string   `yaml:"databaseURL"`
	StorageDriver    string   `yaml:"storageDriver"` // "minio" or "file"
	MinioEndpoint    string   `yaml:"minioEndpoint"`
	MinioAccessKey   string   `yaml:"minioAccessKey"`
	MinioSecretKey   string   `yaml:"minioSecretKey"`
	MinioBucket      string   `yaml:"minioBucket"`
	MinioUseSSL      bool     `yaml:"minioUseSSL"`
	DataDir          string   `yaml:"dataDir"`
	RedisAddr        string   `yaml:"redisAddr"`
	RedisPassword    string   `yaml:"redisPassword"`
	GutenbergBaseURL string   `yaml:"gutenbergBaseURL"`
	OwnerName        string   `yaml:"ownerName"`
	AI               AIConfig `yaml:"ai"`
}

// Load reads config from path (defaults to config.yaml) and applies
// environment overrides.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.MinioAccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.MinioSecretKey = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.MinioBucket = v
	}
	if v := os.Getenv("MINIO_USE_SSL"); v == "true" {
		cfg.MinioUseSSL = true
	}
	if v := os.Getenv("GUTENSHELF_AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = "minio"
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required (set in config.yaml)")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("config: databaseURL is required (set in config.yaml or DATABASE_URL)")
	}
	switch cfg.StorageDriver {
	case "minio":
		if cfg.MinioEndpoint == "" {
			return errors.New("config: minioEndpoint is required for the minio storage driver")
		}
		if cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" {
			return errors.New("config: minio credentials are required for the minio storage driver")
		}
		if cfg.MinioBucket == "" {
			return errors.New("config: minioBucket is required for the minio storage driver")
		}
	case "file":
		if cfg.DataDir == "" {
			return errors.New("config: dataDir is required for the file storage driver")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", cfg.StorageDriver)
	}
	switch cfg.AI.Provider {
	case "openai":
		if cfg.AI.BaseURL == "" {
			return errors.New("config: ai.baseURL is required for the openai provider")
		}
	case "ollama":
		// ollamaURL defaults to the local daemon
	default:
		return fmt.Errorf("config: unknown ai provider %q", cfg.AI.Provider)
	}
	if cfg.AI.Model == "" {
		return errors.New("config: ai.model is required")
	}
	return nil
}
