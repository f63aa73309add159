package config

import (
	"encoding/json"
	"os"
	"strconv"
)

type Config struct {
	AppName      string   `json:"app_name"`
	ListenIP     string   `json:"listen_ip"`
	ListenPort   int      `json:"listen_port"`
	DatabasePath string   `json:"database_path"`
	CORSOrigins  []string `json:"cors_origins"`
}

var AppConfig Config

func LoadConfig(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Decode into a fresh value so a reload never inherits fields
	// from a previous configuration
	var cfg Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return err
	}

	// Override with environment variables if present
	if envPath := os.Getenv("TRAINDIARY_DB_PATH"); envPath != "" {
		cfg.DatabasePath = envPath
	}
	if envPort := os.Getenv("TRAINDIARY_PORT"); envPort != "" {
		if port, err := strconv.Atoi(envPort); err == nil {
			cfg.ListenPort = port
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "./traindiary.db"
	}
	if cfg.ListenPort == 0 {
		cfg.ListenPort = 3000
	}

	AppConfig = cfg
	return nil
}
