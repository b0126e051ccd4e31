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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(suite.dir, "deployment.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(suite.T(), err)
	return path
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	path := suite.writeConfig(`
server:
  hostname: "0.0.0.0"
  port: 9443
  mode: "production"
cors:
  allowed_origins:
    - "https://merchant.example.com"
database:
  config:
    type: "sqlite"
    path: "repository/database/payout.db"
session:
  store: "redis"
  redis_address: "localhost:6379"
notification:
  kafka:
    enabled: true
    brokers: ["localhost:9092"]
    topic: "payout.notifications"
flow:
  preview_amount: 2500
`)

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "0.0.0.0", cfg.Server.Hostname)
	assert.Equal(suite.T(), 9443, cfg.Server.Port)
	assert.False(suite.T(), cfg.IsDevelopment())
	assert.Equal(suite.T(), []string{"https://merchant.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(suite.T(), "sqlite", cfg.Database.Config.Type)
	assert.Equal(suite.T(), SessionStoreRedis, cfg.Session.Store)
	assert.True(suite.T(), cfg.Notification.Kafka.Enabled)
	assert.Equal(suite.T(), []string{"localhost:9092"}, cfg.Notification.Kafka.Brokers)
	assert.Equal(suite.T(), 2500.0, cfg.Flow.PreviewAmount)
}

func (suite *ConfigTestSuite) TestLoadConfigAppliesDefaults() {
	path := suite.writeConfig("server:\n  port: 8090\n")

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "localhost", cfg.Server.Hostname)
	assert.True(suite.T(), cfg.IsDevelopment())
	assert.Equal(suite.T(), SessionStoreMemory, cfg.Session.Store)
	assert.Equal(suite.T(), 1800, cfg.Session.TTL)
	assert.Equal(suite.T(), 2000, cfg.Simulation.BankVerificationDelay)
	assert.Equal(suite.T(), "default", cfg.Flow.DefaultConfigKey)
	assert.Equal(suite.T(), "en-US", cfg.Flow.Locale)
	assert.False(suite.T(), cfg.Server.HTTPOnly)
	assert.Equal(suite.T(), "repository/resources/security/server.cert", cfg.Security.CertFile)
}

func (suite *ConfigTestSuite) TestEnvironmentOverrides() {
	path := suite.writeConfig("server:\n  port: 8090\n  mode: development\n")
	suite.T().Setenv("PAYOUT_SERVER_PORT", "9000")
	suite.T().Setenv("PAYOUT_SERVER_MODE", "production")
	suite.T().Setenv("PAYOUT_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 9000, cfg.Server.Port)
	assert.Equal(suite.T(), ModeProduction, cfg.Server.Mode)
	assert.Equal(suite.T(), []string{"k1:9092", "k2:9092"}, cfg.Notification.Kafka.Brokers)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	_, err := LoadConfig(filepath.Join(suite.dir, "missing.yaml"))
	assert.Error(suite.T(), err)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := suite.writeConfig("server: [unterminated")
	_, err := LoadConfig(path)
	assert.Error(suite.T(), err)
}

func (suite *ConfigTestSuite) TestRuntime() {
	ResetPayoutRuntime()
	defer ResetPayoutRuntime()

	assert.Panics(suite.T(), func() { GetPayoutRuntime() })

	cfg := &Config{Server: ServerConfig{Port: 1234}}
	assert.NoError(suite.T(), InitializePayoutRuntime("/opt/payout", cfg))
	assert.NoError(suite.T(), InitializePayoutRuntime("/ignored", &Config{}))

	runtime := GetPayoutRuntime()
	assert.Equal(suite.T(), "/opt/payout", runtime.ServerHome)
	assert.Equal(suite.T(), 1234, runtime.Config.Server.Port)
}
