package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "campusmap.yml"

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8000"},
		Client: ClientConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 10 * time.Second,
		},
		Prefs: PrefsConfig{Path: defaultPrefsPath()},
		Kafka: KafkaConfig{
			Topic:   "campusmap.interactions",
			GroupID: "campusmap-tail",
		},
		S3: S3Config{Bucket: "campusmap-exports"},
	}
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "campusmap", "prefs.db")
}
