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

// Package managers wires the services of the payout server.
package managers

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/asgardeo/payoutwidget/internal/notification"
	"github.com/asgardeo/payoutwidget/internal/notification/email"
	"github.com/asgardeo/payoutwidget/internal/payout/configstore"
	"github.com/asgardeo/payoutwidget/internal/payout/flowexec"
	"github.com/asgardeo/payoutwidget/internal/payout/renderer"
	"github.com/asgardeo/payoutwidget/internal/payout/session"
	"github.com/asgardeo/payoutwidget/internal/payout/simulation"
	"github.com/asgardeo/payoutwidget/internal/system/config"
	"github.com/asgardeo/payoutwidget/internal/system/database/provider"
	"github.com/asgardeo/payoutwidget/internal/system/healthcheck"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

// ServiceManagerInterface registers the services of the server and releases their resources.
type ServiceManagerInterface interface {
	RegisterServices() error
	Close()
}

// ServiceManager owns the long lived resources of the registered services.
type ServiceManager struct {
	router         chi.Router
	config         *config.Config
	dbProvider     provider.DBProviderInterface
	runner         simulation.RunnerInterface
	sessionStore   session.SessionStoreInterface
	eventPublisher *notification.KafkaNotifier
	logger         *log.Logger
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(router chi.Router, cfg *config.Config) ServiceManagerInterface {
	return &ServiceManager{
		router:     router,
		config:     cfg,
		dbProvider: provider.GetDBProvider(),
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServiceManager")),
	}
}

// RegisterServices builds the payout flow service and its collaborators and registers their routes.
func (sm *ServiceManager) RegisterServices() error {
	configStore := configstore.NewConfigStore(sm.dbProvider)
	if err := configStore.EnsureSchema(); err != nil {
		return fmt.Errorf("prepare configuration store: %w", err)
	}

	registry := renderer.NewDefaultRegistry()
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("validate renderer registry: %w", err)
	}

	sessionStore, err := session.NewSessionStore(sm.config.Session)
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	sm.sessionStore = sessionStore

	if sm.config.Notification.Kafka.Enabled {
		publisher, err := notification.NewKafkaNotifier(sm.config.Notification.Kafka.Brokers,
			sm.config.Notification.Kafka.Topic)
		if err != nil {
			return fmt.Errorf("create notification publisher: %w", err)
		}
		sm.eventPublisher = publisher
		sm.logger.Info("Publishing flow notifications to kafka",
			log.String("topic", sm.config.Notification.Kafka.Topic))
	}

	sm.runner = simulation.NewRunner()

	flowexec.Initialize(sm.router, sm.config, flowexec.Dependencies{
		ConfigStore:    configStore,
		SessionStore:   sessionStore,
		Registry:       registry,
		Runner:         sm.runner,
		EmailSender:    email.NewSimulator(sm.config.Email),
		EventPublisher: sm.eventPublisher,
	})
	healthcheck.Initialize(sm.router, healthcheck.NewHealthCheckService(sm.dbProvider))

	sm.logger.Info("Registered payout services", log.String("sessionStore", sm.config.Session.Store))
	return nil
}

// Close stops pending simulated operations and releases the stores.
func (sm *ServiceManager) Close() {
	if sm.runner != nil {
		sm.runner.Shutdown()
	}
	if sm.sessionStore != nil {
		if err := sm.sessionStore.Close(); err != nil {
			sm.logger.Error("Failed to close session store", log.Error(err))
		}
	}
	if sm.eventPublisher != nil {
		if err := sm.eventPublisher.Close(); err != nil {
			sm.logger.Error("Failed to close notification publisher", log.Error(err))
		}
	}
	if err := sm.dbProvider.Close(); err != nil {
		sm.logger.Error("Failed to close database provider", log.Error(err))
	}
}
