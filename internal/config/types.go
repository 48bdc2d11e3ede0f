package config

import "time"

// Config is the top-level campusmap configuration, corresponding to
// campusmap.yml.
type Config struct {
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Client   ClientConfig   `yaml:"client" koanf:"client"`
	Prefs    PrefsConfig    `yaml:"prefs" koanf:"prefs"`
	Postgres PostgresConfig `yaml:"postgres" koanf:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka" koanf:"kafka"`
	S3       S3Config       `yaml:"s3" koanf:"s3"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr" koanf:"addr"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ClientConfig is used by the terminal viewer.
type ClientConfig struct {
	BaseURL string        `yaml:"base_url" koanf:"base_url"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

type PrefsConfig struct {
	// Path of the SQLite preference database. Empty keeps preferences in memory.
	Path string `yaml:"path" koanf:"path"`
}

type PostgresConfig struct {
	// DSN of the catalogue database. Empty serves the built-in catalogue.
	DSN string `yaml:"dsn" koanf:"dsn"`
}

type KafkaConfig struct {
	// Broker address. Empty disables interaction events.
	Broker  string `yaml:"broker" koanf:"broker"`
	Topic   string `yaml:"topic" koanf:"topic"`
	GroupID string `yaml:"group_id" koanf:"group_id"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint" koanf:"endpoint"`
	AccessKey string `yaml:"access_key" koanf:"access_key"`
	SecretKey string `yaml:"secret_key" koanf:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" koanf:"use_ssl"`
	Bucket    string `yaml:"bucket" koanf:"bucket"`
}
