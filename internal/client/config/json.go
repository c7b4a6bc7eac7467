package config

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/dmitrijs2005/finsync/internal/filex"
	"github.com/dmitrijs2005/finsync/internal/flagx"
	"github.com/dmitrijs2005/finsync/internal/timex"
)

const maxConfigFileSize = 1 << 20

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "empty" so a partial file only touches
// the keys it names.
type JsonConfig struct {
	ServerBaseURL       *string         `json:"server_base_url"`
	DatabasePath        *string         `json:"database_path"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	Verbose             *bool           `json:"verbose"`
	UploadBackend       *string         `json:"upload_backend"`
	S3Bucket            *string         `json:"s3_bucket"`
	S3Region            *string         `json:"s3_region"`
	S3BaseEndpoint      *string         `json:"s3_base_endpoint"`
	S3AccessKey         *string         `json:"s3_access_key"`
	S3SecretKey         *string         `json:"s3_secret_key"`
	S3PublicBaseURL     *string         `json:"s3_public_base_url"`
}

// parseJson overlays cfg with the JSON file given by -c or -config.
// Without the flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := filex.ReadLimited(path, maxConfigFileSize)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	str := func(src *string, dst *string) {
		if src != nil {
			*dst = *src
		}
	}

	str(jc.ServerBaseURL, &cfg.ServerBaseURL)
	str(jc.DatabasePath, &cfg.DatabasePath)
	str(jc.S3Bucket, &cfg.S3Bucket)
	str(jc.S3Region, &cfg.S3Region)
	str(jc.S3BaseEndpoint, &cfg.S3BaseEndpoint)
	str(jc.S3AccessKey, &cfg.S3AccessKey)
	str(jc.S3SecretKey, &cfg.S3SecretKey)
	str(jc.S3PublicBaseURL, &cfg.S3PublicBaseURL)

	if jc.UploadBackend != nil {
		cfg.UploadBackend = uploader.Backend(*jc.UploadBackend)
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}

	return nil
}
