package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rsperl/google-drive-music-indexer/internal/catalog"
	"github.com/rsperl/google-drive-music-indexer/internal/hierarchy"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Drive    DriveConfig       `yaml:"drive"`
	Database DatabaseConfig    `yaml:"database"`
	Sheet    SheetConfig       `yaml:"sheet"`
	Index    IndexConfig       `yaml:"index"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Drive.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Sheet.Validate(); err != nil {
		return err
	}
	return c.Index.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// DriveConfig holds Google Drive access configuration. CredentialsFile is
// usually set from the environment in the config file, e.g.
// "${MUSIC_INDEXER_CLIENT_CREDS}".
type DriveConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	PageSize        int64  `yaml:"page_size"`
}

// Validate validates the Drive configuration.
func (c *DriveConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.CredentialsFile, validation.Required),
		validation.Field(&c.PageSize, validation.Min(int64(1)), validation.Max(int64(1000))),
	)
}

// DatabaseConfig holds the SQLite catalog database location. The catalog
// table is destroyed and rebuilt on every run.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the database configuration.
func (c *DatabaseConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// SheetConfig identifies the destination worksheet.
type SheetConfig struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`
	Name          string `yaml:"name"`
}

// Validate validates the sheet configuration.
func (c *SheetConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SpreadsheetID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

// RootConfig is one top-level folder to index.
type RootConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Validate validates a root entry.
func (c *RootConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

// IndexConfig holds the traversal configuration: the ordered roots, the
// recognized instrument-folder names, and the artist fan-out width.
type IndexConfig struct {
	Roots       []RootConfig `yaml:"roots"`
	Instruments []string     `yaml:"instruments"`
	Workers     int          `yaml:"workers"`
}

// Validate validates the index configuration.
func (c *IndexConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Roots, validation.Required),
		validation.Field(&c.Workers, validation.Required, validation.Min(1)),
	); err != nil {
		return err
	}
	for i := range c.Roots {
		if err := c.Roots[i].Validate(); err != nil {
			return fmt.Errorf("index: root %d: %w", i, err)
		}
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Drive: DriveConfig{
			PageSize: hierarchy.DefaultPageSize,
		},
		Database: DatabaseConfig{
			Path: "data.dat",
		},
		Index: IndexConfig{
			Instruments: catalog.DefaultInstruments,
			Workers:     1,
		},
	}
}
