package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/dmitrijs2005/finsync/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvServerBaseURL       = "FINSYNC_SERVER_URL"
	EnvDatabasePath        = "FINSYNC_DB_PATH"
	EnvRequestTimeout      = "FINSYNC_REQUEST_TIMEOUT"
	EnvOnlineCheckInterval = "FINSYNC_ONLINE_CHECK_INTERVAL"
	EnvVerbose             = "FINSYNC_VERBOSE"
	EnvUploadBackend       = "FINSYNC_UPLOAD_BACKEND"
	EnvS3Bucket            = "FINSYNC_S3_BUCKET"
	EnvS3Region            = "FINSYNC_S3_REGION"
	EnvS3BaseEndpoint      = "FINSYNC_S3_ENDPOINT"
	EnvS3AccessKey         = "FINSYNC_S3_ACCESS_KEY"
	EnvS3SecretKey         = "FINSYNC_S3_SECRET_KEY"
	EnvS3PublicBaseURL     = "FINSYNC_S3_PUBLIC_URL"
)

const defaultEnvFile = ".env"

type lookupFunc func(key string) (string, bool)

// parseEnv overlays cfg with FINSYNC_* values. The dotenv file named by
// -e/-env is read first (a missing explicit file is an error; a missing
// ./.env is not), then the process environment overrides it. The process
// environment itself is never modified.
func parseEnv(cfg *Config, args []string, lookup lookupFunc) error {
	file := flagx.EnvFileFlag(args)
	explicit := file != ""
	if !explicit {
		file = defaultEnvFile
	}

	vars, err := godotenv.Read(file)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", file, err)
		}
		vars = map[string]string{}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	setString := func(key string, dst *string) {
		if v, ok := get(key); ok && v != "" {
			*dst = v
		}
	}

	setDuration := func(key string, dst *time.Duration) error {
		v, ok := get(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	setString(EnvServerBaseURL, &cfg.ServerBaseURL)
	setString(EnvDatabasePath, &cfg.DatabasePath)
	setString(EnvS3Bucket, &cfg.S3Bucket)
	setString(EnvS3Region, &cfg.S3Region)
	setString(EnvS3BaseEndpoint, &cfg.S3BaseEndpoint)
	setString(EnvS3AccessKey, &cfg.S3AccessKey)
	setString(EnvS3SecretKey, &cfg.S3SecretKey)
	setString(EnvS3PublicBaseURL, &cfg.S3PublicBaseURL)

	if v, ok := get(EnvUploadBackend); ok && v != "" {
		cfg.UploadBackend = uploader.Backend(v)
	}

	if err := setDuration(EnvRequestTimeout, &cfg.RequestTimeout); err != nil {
		return err
	}
	if err := setDuration(EnvOnlineCheckInterval, &cfg.OnlineCheckInterval); err != nil {
		return err
	}

	if v, ok := get(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = b
	}

	return nil
}
