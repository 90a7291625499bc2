package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish "not
// set" from zero values so the file only overrides what it names. There is
// deliberately no api_key field: the credential comes from the environment.
type fileConfig struct {
	BaseURL       *string `yaml:"base_url"`
	HTTPTimeoutMS *int    `yaml:"http_timeout_ms"`

	Log struct {
		Level      *string `yaml:"level"`
		File       *string `yaml:"file"`
		MaxSizeMB  *int    `yaml:"max_size_mb"`
		MaxBackups *int    `yaml:"max_backups"`
		MaxAgeDays *int    `yaml:"max_age_days"`
		Compress   *bool   `yaml:"compress"`
	} `yaml:"log"`
}

// applyFile overlays values from the YAML file at path onto cfg. Unknown
// keys are an error so typos do not silently fall back to defaults.
func applyFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file, nothing to apply
		}
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.HTTPTimeoutMS != nil {
		cfg.HTTPTimeout = time.Duration(*fc.HTTPTimeoutMS) * time.Millisecond
	}
	if fc.Log.Level != nil {
		cfg.LogLevel = *fc.Log.Level
	}
	if fc.Log.File != nil {
		cfg.LogFile = *fc.Log.File
	}
	if fc.Log.MaxSizeMB != nil {
		cfg.LogMaxSizeMB = *fc.Log.MaxSizeMB
	}
	if fc.Log.MaxBackups != nil {
		cfg.LogMaxBackups = *fc.Log.MaxBackups
	}
	if fc.Log.MaxAgeDays != nil {
		cfg.LogMaxAgeDays = *fc.Log.MaxAgeDays
	}
	if fc.Log.Compress != nil {
		cfg.LogCompress = *fc.Log.Compress
	}
	return nil
}
