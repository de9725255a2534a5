package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jobmill-project/jobmill/pkg/recovery"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %s", cfg.Logging.Level)
	}
	if cfg.OutputFormat != "text" {
		t.Errorf("expected text output, got %s", cfg.OutputFormat)
	}
	if cfg.AllowNonRestoredState() != recovery.IgnoreUnclaimedStateOption.Default() {
		t.Error("unset flag default should fall back to the option default")
	}
	if cfg.ClaimMode() != recovery.ClaimModeOption.Default() {
		t.Error("unset claim mode should fall back to the option default")
	}
}

func TestLoad_NotExists(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	allow := true
	cfg := Default()
	cfg.Logging.Level = "debug"
	cfg.RestoreDefaults.AllowNonRestoredState = &allow
	cfg.RestoreDefaults.ClaimMode = "claim"

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", loaded.Logging.Level)
	}
	if !loaded.AllowNonRestoredState() {
		t.Error("expected configured flag default true")
	}
	if loaded.ClaimMode() != recovery.ClaimModeClaim {
		t.Errorf("expected CLAIM, got %s", loaded.ClaimMode())
	}
}

func TestClaimMode_UnknownFallsBack(t *testing.T) {
	cfg := Default()
	cfg.RestoreDefaults.ClaimMode = "bogus"
	if cfg.ClaimMode() != recovery.ClaimModeOption.Default() {
		t.Error("unknown configured claim mode should fall back to the option default")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".jobmill"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".jobmill", "config.yaml"), []byte("logging: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
