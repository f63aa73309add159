package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Create a temporary config file
	configContent := `{
		"app_name": "TestDiary",
		"listen_ip": "127.0.0.1",
		"listen_port": 9090,
		"database_path": "./test.db",
		"cors_origins": ["http://localhost:4200"]
	}`
	tmpfile, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatalf("Failed to create temporary file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(configContent)); err != nil {
		t.Fatalf("Failed to write to temporary file: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temporary file: %v", err)
	}

	err = LoadConfig(tmpfile.Name())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if AppConfig.AppName != "TestDiary" {
		t.Errorf("Expected AppName 'TestDiary', got '%s'", AppConfig.AppName)
	}
	if AppConfig.ListenIP != "127.0.0.1" {
		t.Errorf("Expected ListenIP '127.0.0.1', got '%s'", AppConfig.ListenIP)
	}
	if AppConfig.ListenPort != 9090 {
		t.Errorf("Expected ListenPort 9090, got %d", AppConfig.ListenPort)
	}
	if AppConfig.DatabasePath != "./test.db" {
		t.Errorf("Expected DatabasePath './test.db', got '%s'", AppConfig.DatabasePath)
	}
	if len(AppConfig.CORSOrigins) != 1 || AppConfig.CORSOrigins[0] != "http://localhost:4200" {
		t.Errorf("Unexpected CORSOrigins: %v", AppConfig.CORSOrigins)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	tmpfile, _ := os.CreateTemp("", "config.json")
	defer os.Remove(tmpfile.Name())
	tmpfile.Write([]byte(`{"app_name": "TestDiary", "listen_port": 8080, "database_path": "./a.db"}`))
	tmpfile.Close()

	t.Setenv("TRAINDIARY_DB_PATH", "/tmp/override.db")
	t.Setenv("TRAINDIARY_PORT", "9999")

	if err := LoadConfig(tmpfile.Name()); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if AppConfig.DatabasePath != "/tmp/override.db" {
		t.Errorf("Expected env override of DatabasePath, got '%s'", AppConfig.DatabasePath)
	}
	if AppConfig.ListenPort != 9999 {
		t.Errorf("Expected env override of ListenPort, got %d", AppConfig.ListenPort)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpfile, _ := os.CreateTemp("", "config.json")
	defer os.Remove(tmpfile.Name())
	tmpfile.Write([]byte(`{"app_name": "TestDiary"}`))
	tmpfile.Close()

	if err := LoadConfig(tmpfile.Name()); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if AppConfig.DatabasePath != "./traindiary.db" {
		t.Errorf("Expected default DatabasePath, got '%s'", AppConfig.DatabasePath)
	}
	if AppConfig.ListenPort != 3000 {
		t.Errorf("Expected default ListenPort 3000, got %d", AppConfig.ListenPort)
	}
}

func TestLoadConfigInvalidPath(t *testing.T) {
	err := LoadConfig("non-existent-path.json")
	if err == nil {
		t.Error("LoadConfig with non-existent path should have failed")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	tmpfile, _ := os.CreateTemp("", "invalid_config.json")
	defer os.Remove(tmpfile.Name())
	tmpfile.Write([]byte(`{ "invalid": json }`))
	tmpfile.Close()

	err := LoadConfig(tmpfile.Name())
	if err == nil {
		t.Error("LoadConfig with invalid JSON should have failed")
	}
}
