/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	yaml "gopkg.in/yaml.v3"
)

const (
	// ModeDevelopment makes programming errors in the flow surface as failures.
	ModeDevelopment = "development"
	// ModeProduction makes programming errors in the flow degrade to logged no-ops.
	ModeProduction = "production"

	// SessionStoreMemory keeps flow sessions in process memory.
	SessionStoreMemory = "memory"
	// SessionStoreRedis keeps flow sessions in redis.
	SessionStoreRedis = "redis"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname" env:"PAYOUT_SERVER_HOSTNAME"`
	Port     int    `yaml:"port" env:"PAYOUT_SERVER_PORT"`
	Mode     string `yaml:"mode" env:"PAYOUT_SERVER_MODE"`
	HTTPOnly bool   `yaml:"http_only" env:"PAYOUT_SERVER_HTTP_ONLY"`
}

// SecurityConfig holds the TLS certificate and key paths, relative to the server home.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file" env:"PAYOUT_SECURITY_CERT_FILE"`
	KeyFile  string `yaml:"key_file" env:"PAYOUT_SECURITY_KEY_FILE"`
}

// CORSConfig holds the configuration details for cross-origin requests from embedding pages.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"PAYOUT_CORS_ALLOWED_ORIGINS"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type" env:"PAYOUT_DB_TYPE"`
	Hostname        string `yaml:"hostname" env:"PAYOUT_DB_HOSTNAME"`
	Port            int    `yaml:"port" env:"PAYOUT_DB_PORT"`
	Name            string `yaml:"name" env:"PAYOUT_DB_NAME"`
	Username        string `yaml:"username" env:"PAYOUT_DB_USERNAME"`
	Password        string `yaml:"password" env:"PAYOUT_DB_PASSWORD"`
	SSLMode         string `yaml:"sslmode" env:"PAYOUT_DB_SSLMODE"`
	Path            string `yaml:"path" env:"PAYOUT_DB_PATH"`
	Options         string `yaml:"options" env:"PAYOUT_DB_OPTIONS"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the database configuration details.
type DatabaseConfig struct {
	Config DataSource `yaml:"config"`
}

// SessionConfig holds the flow session store configuration details.
type SessionConfig struct {
	Store        string `yaml:"store" env:"PAYOUT_SESSION_STORE"`
	TTL          int    `yaml:"ttl" env:"PAYOUT_SESSION_TTL"`
	RedisAddress string `yaml:"redis_address" env:"PAYOUT_SESSION_REDIS_ADDRESS"`
	KeyPrefix    string `yaml:"key_prefix"`
}

// KafkaConfig holds the configuration details of the notification event publisher.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled" env:"PAYOUT_KAFKA_ENABLED"`
	Brokers []string `yaml:"brokers" env:"PAYOUT_KAFKA_BROKERS"`
	Topic   string   `yaml:"topic" env:"PAYOUT_KAFKA_TOPIC"`
}

// NotificationConfig holds the notification surface configuration details.
type NotificationConfig struct {
	Kafka KafkaConfig `yaml:"kafka"`
}

// EmailConfig holds the email simulation configuration details.
type EmailConfig struct {
	ProviderURL string `yaml:"provider_url" env:"PAYOUT_EMAIL_PROVIDER_URL"`
	Sender      string `yaml:"sender" env:"PAYOUT_EMAIL_SENDER"`
	Timeout     int    `yaml:"timeout"`
}

// SimulationConfig holds the timings of simulated asynchronous operations, in milliseconds.
type SimulationConfig struct {
	BankVerificationDelay int `yaml:"bank_verification_delay" env:"PAYOUT_SIMULATION_BANK_DELAY"`
	UploadTickInterval    int `yaml:"upload_tick_interval"`
}

// FlowConfig holds the payout flow configuration details.
type FlowConfig struct {
	DefaultConfigKey string  `yaml:"default_config_key" env:"PAYOUT_FLOW_DEFAULT_CONFIG_KEY"`
	PreviewAmount    float64 `yaml:"preview_amount"`
	Locale           string  `yaml:"locale" env:"PAYOUT_FLOW_LOCALE"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Security     SecurityConfig     `yaml:"security"`
	CORS         CORSConfig         `yaml:"cors"`
	Database     DatabaseConfig     `yaml:"database"`
	Session      SessionConfig      `yaml:"session"`
	Notification NotificationConfig `yaml:"notification"`
	Email        EmailConfig        `yaml:"email"`
	Simulation   SimulationConfig   `yaml:"simulation"`
	Flow         FlowConfig         `yaml:"flow"`
}

// LoadConfig loads the configurations from the specified YAML file and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Mode != ModeProduction
}

// applyDefaults fills unset values with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Server.Hostname == "" {
		cfg.Server.Hostname = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = ModeDevelopment
	}
	if cfg.Security.CertFile == "" {
		cfg.Security.CertFile = "repository/resources/security/server.cert"
	}
	if cfg.Security.KeyFile == "" {
		cfg.Security.KeyFile = "repository/resources/security/server.key"
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = SessionStoreMemory
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 1800
	}
	if cfg.Session.KeyPrefix == "" {
		cfg.Session.KeyPrefix = "payout:flow:"
	}
	if cfg.Email.Timeout <= 0 {
		cfg.Email.Timeout = 10
	}
	if cfg.Simulation.BankVerificationDelay <= 0 {
		cfg.Simulation.BankVerificationDelay = 2000
	}
	if cfg.Simulation.UploadTickInterval <= 0 {
		cfg.Simulation.UploadTickInterval = 300
	}
	if cfg.Flow.DefaultConfigKey == "" {
		cfg.Flow.DefaultConfigKey = "default"
	}
	if cfg.Flow.PreviewAmount <= 0 {
		cfg.Flow.PreviewAmount = 1000
	}
	if cfg.Flow.Locale == "" {
		cfg.Flow.Locale = "en-US"
	}
}
