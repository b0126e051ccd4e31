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

package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/payoutwidget/internal/system/config"
	syshttp "github.com/asgardeo/payoutwidget/internal/system/http"
)

type httpClientMock struct {
	mock.Mock
}

func (m *httpClientMock) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if resp, ok := args.Get(0).(*http.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type SimulatorTestSuite struct {
	suite.Suite
	request EmailRequest
}

func TestSimulatorTestSuite(t *testing.T) {
	suite.Run(t, new(SimulatorTestSuite))
}

func (s *SimulatorTestSuite) SetupTest() {
	s.request = EmailRequest{To: "jane@example.com", Subject: "Welcome", HTML: "<p>Hi</p>"}
}

func (s *SimulatorTestSuite) TestWithoutProviderIsSimulationOnly() {
	result := NewSimulator(config.EmailConfig{Timeout: 1}).Send(context.Background(), s.request)

	s.False(result.Success)
	s.Equal(noteSimulationOnly, result.Note)
}

func (s *SimulatorTestSuite) TestProviderAcceptsEmail() {
	var received providerPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.NoError(json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sim := newSimulator(config.EmailConfig{ProviderURL: server.URL, Sender: "payouts@example.com"},
		syshttp.NewHTTPClient())
	result := sim.Send(context.Background(), s.request)

	s.True(result.Success)
	s.Equal("payouts@example.com", received.From)
	s.Equal("jane@example.com", received.To)
	s.Equal("Welcome", received.Subject)
}

func (s *SimulatorTestSuite) TestProviderRejection() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	sim := newSimulator(config.EmailConfig{ProviderURL: server.URL}, syshttp.NewHTTPClient())
	result := sim.Send(context.Background(), s.request)

	s.False(result.Success)
	s.Contains(result.Note, "403")
}

func (s *SimulatorTestSuite) TestProviderUnreachable() {
	client := &httpClientMock{}
	client.On("Do", mock.Anything).Return(nil, errors.New("blocked by CORS")).Once()

	sim := newSimulator(config.EmailConfig{ProviderURL: "https://mail.example.com/send"}, client)
	result := sim.Send(context.Background(), s.request)

	s.False(result.Success)
	s.Contains(result.Note, "blocked by CORS")
	client.AssertExpectations(s.T())
}

func (s *SimulatorTestSuite) TestInvalidEndpoint() {
	sim := newSimulator(config.EmailConfig{ProviderURL: "://bad"}, &httpClientMock{})
	result := sim.Send(context.Background(), s.request)

	s.False(result.Success)
	s.Contains(result.Note, "Invalid email provider endpoint")
}
