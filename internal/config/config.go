// Package config loads campusmap settings from defaults, a YAML file and
// CAMPUSMAP_* environment variables, in that order.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "CAMPUSMAP_"

// envKey maps CAMPUSMAP_SERVER_ALLOW_ALL_ORIGINS to server.allow_all_origins.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings every command needs. Optional integrations
// are only checked when enabled.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("client.base_url %q must be an absolute http(s) URL", c.Client.BaseURL)
	}
	if c.Client.Timeout < 0 {
		return fmt.Errorf("client.timeout must be non-negative")
	}
	if c.Kafka.Broker != "" && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.broker is set")
	}
	return nil
}

// ValidateS3 checks the settings needed to upload exports.
func (c *Config) ValidateS3() error {
	var missing []string
	if c.S3.Endpoint == "" {
		missing = append(missing, "s3.endpoint")
	}
	if c.S3.AccessKey == "" {
		missing = append(missing, "s3.access_key")
	}
	if c.S3.SecretKey == "" {
		missing = append(missing, "s3.secret_key")
	}
	if c.S3.Bucket == "" {
		missing = append(missing, "s3.bucket")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}
