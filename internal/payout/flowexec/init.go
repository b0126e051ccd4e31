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

package flowexec

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/asgardeo/payoutwidget/internal/notification"
	"github.com/asgardeo/payoutwidget/internal/notification/email"
	"github.com/asgardeo/payoutwidget/internal/payout/configstore"
	"github.com/asgardeo/payoutwidget/internal/payout/renderer"
	"github.com/asgardeo/payoutwidget/internal/payout/session"
	"github.com/asgardeo/payoutwidget/internal/payout/simulation"
	"github.com/asgardeo/payoutwidget/internal/system/config"
)

// Dependencies groups the collaborators of the flow service.
type Dependencies struct {
	ConfigStore  configstore.ConfigStoreInterface
	SessionStore session.SessionStoreInterface
	Registry     renderer.RegistryInterface
	Runner       simulation.RunnerInterface
	EmailSender  email.EmailSenderInterface
	// EventPublisher receives flow notifications in addition to the server log. Optional.
	EventPublisher *notification.KafkaNotifier
}

// Initialize creates the flow service and registers its routes.
func Initialize(router chi.Router, cfg *config.Config, deps Dependencies) FlowServiceInterface {
	logNotifier := notification.NewLogNotifier()
	notifierFor := func(flowID string) notification.NotifierInterface {
		if deps.EventPublisher == nil {
			return logNotifier
		}
		return notification.NewMulti(logNotifier, deps.EventPublisher.ForFlow(flowID))
	}

	settings := serviceSettings{
		development:           cfg.IsDevelopment(),
		defaultConfigKey:      cfg.Flow.DefaultConfigKey,
		defaultLocale:         cfg.Flow.Locale,
		previewAmount:         cfg.Flow.PreviewAmount,
		bankVerificationDelay: time.Duration(cfg.Simulation.BankVerificationDelay) * time.Millisecond,
		uploadTick:            time.Duration(cfg.Simulation.UploadTickInterval) * time.Millisecond,
		emailTimeout:          time.Duration(cfg.Email.Timeout) * time.Second,
	}

	flowService := newFlowService(deps.ConfigStore, deps.SessionStore, deps.Registry, deps.Runner,
		deps.EmailSender, notifierFor, settings)
	registerRoutes(router, newFlowHandler(flowService))
	return flowService
}

func registerRoutes(router chi.Router, handler *flowHandler) {
	router.Route("/payout", func(r chi.Router) {
		r.Post("/flows", handler.HandleStartFlow)
		r.Get("/flows/{flowId}", handler.HandleGetFlow)
		r.Delete("/flows/{flowId}", handler.HandleEndFlow)
		r.Post("/flows/{flowId}/actions", handler.HandleExecuteAction)
		r.Get("/config/{configKey}", handler.HandleGetConfiguration)
		r.Put("/config/{configKey}", handler.HandlePutConfiguration)
		r.Post("/email/simulate", handler.HandleSimulateEmail)
	})
}
