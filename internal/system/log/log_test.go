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

package log

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type LogTestSuite struct {
	suite.Suite
	logs   *observer.ObservedLogs
	logger *Logger
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	core, logs := observer.New(zapcore.DebugLevel)
	suite.logs = logs
	suite.logger = NewLogger(core)
}

func (suite *LogTestSuite) TestWithAddsFields() {
	suite.logger.With(String(LoggerKeyComponentName, "FlowEngine")).
		Info("Advancing flow", String(LoggerKeyFlowID, "flow-1"), Int("activeIndex", 2))

	entries := suite.logs.All()
	assert.Len(suite.T(), entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(suite.T(), "FlowEngine", fields[LoggerKeyComponentName])
	assert.Equal(suite.T(), "flow-1", fields[LoggerKeyFlowID])
	assert.Equal(suite.T(), int64(2), fields["activeIndex"])
}

func (suite *LogTestSuite) TestLevels() {
	suite.logger.Debug("debug")
	suite.logger.Info("info")
	suite.logger.Warn("warn")
	suite.logger.Error("error", Error(errors.New("boom")))

	assert.Equal(suite.T(), 1, suite.logs.FilterLevelExact(zapcore.DebugLevel).Len())
	assert.Equal(suite.T(), 1, suite.logs.FilterLevelExact(zapcore.InfoLevel).Len())
	assert.Equal(suite.T(), 1, suite.logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(suite.T(), 1, suite.logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.True(suite.T(), suite.logger.IsDebugEnabled())
}

func (suite *LogTestSuite) TestIsDebugDisabledAtInfo() {
	core, _ := observer.New(zapcore.InfoLevel)
	assert.False(suite.T(), NewLogger(core).IsDebugEnabled())
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name     string
		input    string
		expected zapcore.Level
		hasError bool
	}{
		{name: "Debug", input: "debug", expected: zapcore.DebugLevel},
		{name: "UpperCase", input: "WARN", expected: zapcore.WarnLevel},
		{name: "Error", input: "error", expected: zapcore.ErrorLevel},
		{name: "Invalid", input: "verbose", hasError: true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			level, err := parseLogLevel(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func (suite *LogTestSuite) TestMaskString() {
	assert.Equal(suite.T(), "***", MaskString("abc"))
	assert.Equal(suite.T(), "j******e", MaskString("janeXdoe"))
	assert.Equal(suite.T(), "", MaskString(""))
}

func (suite *LogTestSuite) TestAccessLogHandler() {
	handler := AccessLogHandler(suite.logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/payout/flows", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusCreated, rr.Code)
	entries := suite.logs.All()
	assert.Len(suite.T(), entries, 1)
	assert.Contains(suite.T(), entries[0].Message, `"POST /payout/flows HTTP/1.1" 201 7`)
}
