package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/finsync/internal/client/uploader"
)

// Config holds runtime settings for the FinSync client.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
	// RequestTimeout bounds each API call; 0 leaves it to the transport.
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	Verbose             bool

	UploadBackend   uploader.Backend
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.DatabasePath = defaultDatabasePath()
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 3 * time.Second
	c.Verbose = false
	c.UploadBackend = uploader.BackendHTTP
}

// UploaderSettings extracts the uploader part of c.
func (c *Config) UploaderSettings() uploader.Settings {
	return uploader.Settings{
		Backend:         c.UploadBackend,
		S3Bucket:        c.S3Bucket,
		S3Region:        c.S3Region,
		S3BaseEndpoint:  c.S3BaseEndpoint,
		S3AccessKey:     c.S3AccessKey,
		S3SecretKey:     c.S3SecretKey,
		S3PublicBaseURL: c.S3PublicBaseURL,
	}
}

// LoadConfig builds a Config from defaults, the environment, an optional
// JSON file and the flags in args (without the program name). Later sources
// take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "finsync.db"
	}
	return filepath.Join(dir, "finsync", "finsync.db")
}
