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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/payoutwidget/internal/system/database/client"
	"github.com/asgardeo/payoutwidget/internal/system/database/model"
)

type dbProviderMock struct {
	mock.Mock
}

func (m *dbProviderMock) GetDBClient() (client.DBClientInterface, error) {
	args := m.Called()
	if c, ok := args.Get(0).(client.DBClientInterface); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *dbProviderMock) Close() error {
	return m.Called().Error(0)
}

type dbClientMock struct {
	mock.Mock
}

func (m *dbClientMock) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	ret := m.Called(query)
	rows, _ := ret.Get(0).([]map[string]interface{})
	return rows, ret.Error(1)
}

func (m *dbClientMock) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	ret := m.Called(query)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *dbClientMock) Close() error {
	return nil
}

type HealthCheckTestSuite struct {
	suite.Suite
	provider *dbProviderMock
	router   chi.Router
}

func TestHealthCheckTestSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckTestSuite))
}

func (s *HealthCheckTestSuite) SetupTest() {
	s.provider = &dbProviderMock{}
	s.router = chi.NewRouter()
	Initialize(s.router, NewHealthCheckService(s.provider))
}

func (s *HealthCheckTestSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *HealthCheckTestSuite) TestLiveness() {
	s.Equal(http.StatusOK, s.get("/health/liveness").Code)
}

func (s *HealthCheckTestSuite) TestReadinessUp() {
	dbClient := &dbClientMock{}
	dbClient.On("Query", queryConfigDBTable).Return([]map[string]interface{}{{"total": int64(1)}}, nil)
	s.provider.On("GetDBClient").Return(dbClient, nil)

	rec := s.get("/health/readiness")

	s.Equal(http.StatusOK, rec.Code)
	var status ServerStatus
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&status))
	s.Equal(StatusUp, status.Status)
	s.Equal("ConfigDB", status.ServiceStatus[0].ServiceName)
}

func (s *HealthCheckTestSuite) TestReadinessDown() {
	tests := []struct {
		name  string
		setup func()
	}{
		{"client unavailable", func() {
			s.provider.On("GetDBClient").Return(nil, errors.New("no database"))
		}},
		{"query fails", func() {
			dbClient := &dbClientMock{}
			dbClient.On("Query", queryConfigDBTable).Return(nil, errors.New("no table"))
			s.provider.On("GetDBClient").Return(dbClient, nil)
		}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setup()

			rec := s.get("/health/readiness")

			s.Equal(http.StatusServiceUnavailable, rec.Code)
			var status ServerStatus
			s.Require().NoError(json.NewDecoder(rec.Body).Decode(&status))
			s.Equal(StatusDown, status.Status)
		})
	}
}
