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

package healthcheck

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asgardeo/payoutwidget/internal/system/log"
	sysutils "github.com/asgardeo/payoutwidget/internal/system/utils"
)

// HealthCheckHandler defines the handler for health check API requests.
type HealthCheckHandler struct {
	service HealthCheckServiceInterface
	logger  *log.Logger
}

// Initialize registers the health check routes.
func Initialize(router chi.Router, service HealthCheckServiceInterface) {
	handler := &HealthCheckHandler{
		service: service,
		logger:  log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler")),
	}
	router.Get("/health/liveness", handler.HandleLivenessRequest)
	router.Get("/health/readiness", handler.HandleReadinessRequest)
}

// HandleLivenessRequest handles the liveness request.
func (h *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// HandleReadinessRequest handles the readiness request.
func (h *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	serverStatus := h.service.CheckReadiness()
	if serverStatus.Status != StatusUp {
		h.logger.Error("Readiness check failed", log.String("status", string(serverStatus.Status)))
		sysutils.WriteJSON(w, http.StatusServiceUnavailable, serverStatus)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, serverStatus)
}
