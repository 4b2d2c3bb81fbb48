package cms

import "errors"

var (
	ErrDatabaseDSNRequired  = errors.New("cms: database DSN is required")
	ErrMediaBackendUnknown  = errors.New("cms: unknown media backend")
	ErrMediaBaseDirRequired = errors.New("cms: media base directory is required")
	ErrMediaBucketRequired  = errors.New("cms: media bucket is required")
	ErrLoggingLevelInvalid  = errors.New("cms: invalid logging level")
	ErrLoggingFormatInvalid = errors.New("cms: invalid logging format")
)

// Media backends.
const (
	MediaBackendFS     = "fs"
	MediaBackendS3     = "s3"
	MediaBackendMemory = "memory"
)

// Config is the root module configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database" json:"database"`
	Media    MediaConfig    `yaml:"media" json:"media"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`

	// SeedDefaults writes the built-in baseline content on Init when the
	// store is empty.
	SeedDefaults bool `yaml:"seed_defaults" json:"seed_defaults"`
}

// DatabaseConfig selects the SQLite database backing the content store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn" json:"dsn"`
}

// MediaConfig selects and configures the object store for uploads.
type MediaConfig struct {
	Backend string `yaml:"backend" json:"backend"`

	// fs backend
	BaseDir   string `yaml:"base_dir" json:"base_dir"`
	URLPrefix string `yaml:"url_prefix" json:"url_prefix"`

	// s3 backend
	Region          string `yaml:"region" json:"region"`
	Bucket          string `yaml:"bucket" json:"bucket"`
	AccessKeyID     string `yaml:"access_key_id" json:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key"`
	Endpoint        string `yaml:"endpoint" json:"endpoint"`
	UsePathStyle    bool   `yaml:"use_path_style" json:"use_path_style"`
	PublicURL       string `yaml:"public_url" json:"public_url"`
}

// LoggingConfig configures the go-logger provider used when no provider is
// injected.
type LoggingConfig struct {
	Level     string `yaml:"level" json:"level"`
	Format    string `yaml:"format" json:"format"`
	AddSource bool   `yaml:"add_source" json:"add_source"`
}

// DefaultConfig returns a config suited to local development: an on-disk
// SQLite file, filesystem media under ./data/media, JSON logs at info.
func DefaultConfig() Config {
	return Config{
		Database: DatabaseConfig{
			DSN: "file:kallos.db?_fk=1",
		},
		Media: MediaConfig{
			Backend:   MediaBackendFS,
			BaseDir:   "data/media",
			URLPrefix: "/media",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		SeedDefaults: true,
	}
}

// Validate checks the config for contradictions before anything opens.
func (c Config) Validate() error {
	if c.Database.DSN == "" {
		return ErrDatabaseDSNRequired
	}

	switch c.Media.Backend {
	case MediaBackendFS:
		if c.Media.BaseDir == "" {
			return ErrMediaBaseDirRequired
		}
	case MediaBackendS3:
		if c.Media.Bucket == "" {
			return ErrMediaBucketRequired
		}
	case MediaBackendMemory, "":
	default:
		return ErrMediaBackendUnknown
	}

	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch c.Logging.Format {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
