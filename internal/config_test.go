package internal

import (
	"testing"
)

func validConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.Drive.CredentialsFile = "/tmp/creds.json"
	cfg.Sheet.SpreadsheetID = "sheet-id"
	cfg.Sheet.Name = "Songs"
	cfg.Index.Roots = []RootConfig{{ID: "R", Name: "Library"}}
	return cfg
}

func TestConfig_ValidPasses(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config should pass: %v", err)
	}
}

func TestConfig_MissingCredentialsFails(t *testing.T) {
	cfg := validConfig()
	cfg.Drive.CredentialsFile = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing credentials file should fail validation")
	}
}

func TestConfig_PageSizeBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Drive.PageSize = 5000
	if err := cfg.Validate(); err == nil {
		t.Fatal("page size above 1000 should fail validation")
	}
}

func TestConfig_MissingSheetNameFails(t *testing.T) {
	cfg := validConfig()
	cfg.Sheet.Name = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing sheet name should fail validation")
	}
}

func TestConfig_NoRootsFails(t *testing.T) {
	cfg := validConfig()
	cfg.Index.Roots = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty roots should fail validation")
	}
}

func TestConfig_RootMissingIDFails(t *testing.T) {
	cfg := validConfig()
	cfg.Index.Roots = []RootConfig{{Name: "Library"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("root without id should fail validation")
	}
}

func TestConfig_ZeroWorkersFails(t *testing.T) {
	cfg := validConfig()
	cfg.Index.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero workers should fail validation")
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Drive.PageSize != 1000 {
		t.Errorf("page size = %d, want 1000", cfg.Drive.PageSize)
	}
	if cfg.Database.Path != "data.dat" {
		t.Errorf("database path = %q, want data.dat", cfg.Database.Path)
	}
	if cfg.Index.Workers != 1 {
		t.Errorf("workers = %d, want 1", cfg.Index.Workers)
	}
	if len(cfg.Index.Instruments) == 0 {
		t.Error("default instrument set should not be empty")
	}
}
