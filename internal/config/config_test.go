package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 50051 {
		t.Errorf("Expected default port 50051, got %d", cfg.Port)
	}
	if cfg.MetricsPort != 9100 {
		t.Errorf("Expected default metrics port 9100, got %d", cfg.MetricsPort)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("Expected default cache TTL 5m, got %v", cfg.CacheTTL)
	}
	if cfg.UseMock {
		t.Error("Expected use_mock to default to false")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("port: 6000\nmodel: /models/squeeze.onnx\ninput_height: 224\ninput_width: 224\nlog_level: debug\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 6000 {
		t.Errorf("Expected port 6000, got %d", cfg.Port)
	}
	if cfg.Model != "/models/squeeze.onnx" {
		t.Errorf("Expected model path from file, got %s", cfg.Model)
	}
	if cfg.InputHeight != 224 || cfg.InputWidth != 224 {
		t.Errorf("Expected 224x224 overrides, got %dx%d", cfg.InputHeight, cfg.InputWidth)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for explicitly named missing config file")
	}
}

func TestValidateRejectsBadPorts(t *testing.T) {
	cfg := &Config{Port: 0, MetricsPort: 9100, Model: "m.onnx"}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for port 0")
	}

	cfg = &Config{Port: 50051, MetricsPort: 50051, Model: "m.onnx"}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for equal port and metrics_port")
	}
}

func TestValidateRequiresModelUnlessMock(t *testing.T) {
	cfg := &Config{Port: 50051, MetricsPort: 9100, Model: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing model without mock")
	}

	cfg.UseMock = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected mock config to validate, got: %v", err)
	}
}

func TestOTELEndpointEnablesTracing(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.OTELEnabled {
		t.Error("Expected otel_enabled when OTEL_EXPORTER_OTLP_ENDPOINT is set")
	}
	if cfg.OTELEndpoint != "localhost:4317" {
		t.Errorf("Expected endpoint from env, got %s", cfg.OTELEndpoint)
	}
}
