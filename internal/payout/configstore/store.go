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

// Package configstore persists the widget configuration as a JSON blob.
package configstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/system/database/provider"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

const loggerComponentName = "ConfigStore"

// ErrInvalidConfiguration is returned when a configuration fails validation on save.
var ErrInvalidConfiguration = errors.New("invalid widget configuration")

// ConfigStoreInterface reads and writes widget configurations.
type ConfigStoreInterface interface {
	EnsureSchema() error
	Load(key string) (model.WidgetConfig, error)
	Save(key string, cfg model.WidgetConfig) error
	Delete(key string) error
}

// ConfigStore stores configurations in the WIDGET_CONFIG table.
type ConfigStore struct {
	dbProvider provider.DBProviderInterface
	logger     *log.Logger
}

// NewConfigStore creates a configuration store backed by the database provider.
func NewConfigStore(dbProvider provider.DBProviderInterface) ConfigStoreInterface {
	return &ConfigStore{
		dbProvider: dbProvider,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// EnsureSchema creates the configuration table if needed.
func (s *ConfigStore) EnsureSchema() error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		s.logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}
	if _, err := dbClient.Execute(QueryCreateConfigTable); err != nil {
		s.logger.Error("Failed to create the configuration table", log.Error(err))
		return fmt.Errorf("failed to create the configuration table: %w", err)
	}
	return nil
}

// Load returns the configuration stored under the key. A missing, malformed or invalid
// blob yields the default configuration; only database failures are returned as errors.
func (s *ConfigStore) Load(key string) (model.WidgetConfig, error) {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		s.logger.Error("Failed to get database client", log.Error(err))
		return model.WidgetConfig{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetConfig, key)
	if err != nil {
		s.logger.Error("Failed to execute query", log.Error(err))
		return model.WidgetConfig{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		s.logger.Debug("Configuration not found, using defaults", log.String("configKey", key))
		return model.DefaultWidgetConfig(), nil
	}

	raw, ok := blobValue(results[0]["config_value"])
	if !ok {
		s.logger.Warn("Configuration value has an unexpected type, using defaults", log.String("configKey", key))
		return model.DefaultWidgetConfig(), nil
	}

	cfg, err := decode(raw)
	if err != nil {
		s.logger.Warn("Stored configuration is unusable, using defaults",
			log.String("configKey", key), log.Error(err))
		return model.DefaultWidgetConfig(), nil
	}
	return cfg, nil
}

// Save validates the configuration and writes the full blob under the key.
func (s *ConfigStore) Save(key string, cfg model.WidgetConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	blob, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		s.logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(QueryUpsertConfig, key, string(blob)); err != nil {
		s.logger.Error("Failed to store configuration", log.String("configKey", key), log.Error(err))
		return fmt.Errorf("failed to store configuration: %w", err)
	}
	s.logger.Debug("Stored configuration", log.String("configKey", key))
	return nil
}

// Delete removes the configuration stored under the key.
func (s *ConfigStore) Delete(key string) error {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		s.logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}
	if _, err := dbClient.Execute(QueryDeleteConfig, key); err != nil {
		s.logger.Error("Failed to delete configuration", log.String("configKey", key), log.Error(err))
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	return nil
}

func blobValue(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case string:
		return []byte(v), true
	case []byte:
		return v, true
	default:
		return nil, false
	}
}

// decode overlays the blob on the default configuration so absent fields keep their defaults.
func decode(raw []byte) (model.WidgetConfig, error) {
	cfg := model.DefaultWidgetConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return model.WidgetConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return model.WidgetConfig{}, err
	}
	return cfg, nil
}
