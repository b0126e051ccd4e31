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

// Package healthcheck serves the liveness and readiness endpoints of the server.
package healthcheck

import (
	"github.com/asgardeo/payoutwidget/internal/system/database/model"
	"github.com/asgardeo/payoutwidget/internal/system/database/provider"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

// Status is the health status of the server or one of its dependencies.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// ServiceStatus is the status of a single dependency.
type ServiceStatus struct {
	ServiceName string `json:"service_name"`
	Status      Status `json:"status"`
}

// ServerStatus is the aggregated readiness of the server.
type ServerStatus struct {
	Status        Status          `json:"status"`
	ServiceStatus []ServiceStatus `json:"service_status"`
}

var queryConfigDBTable = model.DBQuery{
	ID:    "HLC-00001",
	Query: "SELECT COUNT(*) AS TOTAL FROM WIDGET_CONFIG",
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() ServerStatus
}

type healthCheckService struct {
	dbProvider provider.DBProviderInterface
	logger     *log.Logger
}

// NewHealthCheckService creates a health check service over the configuration database.
func NewHealthCheckService(dbProvider provider.DBProviderInterface) HealthCheckServiceInterface {
	return &healthCheckService{
		dbProvider: dbProvider,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService")),
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (s *healthCheckService) CheckReadiness() ServerStatus {
	configDBStatus := ServiceStatus{
		ServiceName: "ConfigDB",
		Status:      s.checkDatabaseStatus(),
	}
	return ServerStatus{
		Status:        configDBStatus.Status,
		ServiceStatus: []ServiceStatus{configDBStatus},
	}
}

func (s *healthCheckService) checkDatabaseStatus() Status {
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		s.logger.Error("Failed to get database client", log.Error(err))
		return StatusDown
	}
	if _, err := dbClient.Query(queryConfigDBTable); err != nil {
		s.logger.Error("Failed to execute query", log.Error(err))
		return StatusDown
	}
	return StatusUp
}
