package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	DB       DBConfig       `yaml:"db"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	Overleaf OverleafConfig `yaml:"overleaf"`
}

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Transport string `yaml:"transport"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type OverleafConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	APIURL   string `yaml:"api_url"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: "http",
		},
		DB: DBConfig{
			Path: "data/app.db",
		},
		Storage: StorageConfig{
			Path: "data/projects",
		},
		Log: LogConfig{
			Level: "info",
		},
		Overleaf: OverleafConfig{
			APIURL: "https://www.overleaf.com",
		},
	}

	if path := os.Getenv("OVERLEAF_MCP_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("OVERLEAF_MCP_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("OVERLEAF_MCP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid OVERLEAF_MCP_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("OVERLEAF_MCP_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if dbPath := os.Getenv("OVERLEAF_MCP_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if storagePath := os.Getenv("OVERLEAF_MCP_STORAGE_PATH"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}
	if level := os.Getenv("OVERLEAF_MCP_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if email := os.Getenv("OVERLEAF_EMAIL"); email != "" {
		cfg.Overleaf.Email = email
	}
	if password := os.Getenv("OVERLEAF_PASSWORD"); password != "" {
		cfg.Overleaf.Password = password
	}
	if apiURL := os.Getenv("OVERLEAF_API_URL"); apiURL != "" {
		cfg.Overleaf.APIURL = apiURL
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
