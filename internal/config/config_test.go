package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SNAPSHOT_PATH", "")

	cfg := Load()
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.CORSOrigins != "http://localhost:5173" {
		t.Errorf("CORSOrigins = %q", cfg.CORSOrigins)
	}
	if cfg.SnapshotPath != "" {
		t.Errorf("SnapshotPath = %q, want empty", cfg.SnapshotPath)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.example.com")
	t.Setenv("SNAPSHOT_PATH", "/srv/snapshots/june.json")

	cfg := Load()
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.CORSOrigins != "https://ops.example.com" {
		t.Errorf("CORSOrigins = %q", cfg.CORSOrigins)
	}
	if cfg.SnapshotPath != "/srv/snapshots/june.json" {
		t.Errorf("SnapshotPath = %q", cfg.SnapshotPath)
	}
}
