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

package configstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/system/database/client"
	dbmodel "github.com/asgardeo/payoutwidget/internal/system/database/model"
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

type ConfigStoreTestSuite struct {
	suite.Suite
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	provider *dbProviderMock
	store    ConfigStoreInterface
}

func TestConfigStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigStoreTestSuite))
}

func (s *ConfigStoreTestSuite) SetupTest() {
	var err error
	s.db, s.sqlMock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	s.Require().NoError(err)

	s.provider = &dbProviderMock{}
	s.provider.On("GetDBClient").Return(client.NewDBClient(dbmodel.NewDB(s.db), "postgres"), nil)
	s.store = NewConfigStore(s.provider)
}

func (s *ConfigStoreTestSuite) TearDownTest() {
	s.NoError(s.sqlMock.ExpectationsWereMet())
	_ = s.db.Close()
}

func (s *ConfigStoreTestSuite) expectGet(key string, value interface{}) {
	rows := sqlmock.NewRows([]string{"CONFIG_KEY", "CONFIG_VALUE", "UPDATED_AT"})
	if value != nil {
		rows.AddRow(key, value, "2025-01-01 00:00:00")
	}
	s.sqlMock.ExpectQuery(QueryGetConfig.Query).WithArgs(key).WillReturnRows(rows)
}

func (s *ConfigStoreTestSuite) TestLoadStoredConfiguration() {
	stored := model.DefaultWidgetConfig()
	stored.EnabledSteps = []constants.StepID{constants.StepProfile, constants.StepPayout, constants.StepTax}
	stored.EnabledPayoutMethods = []constants.PayoutMethod{constants.MethodBankTransfer, constants.MethodCrypto}
	stored.RecipientType = constants.RecipientVendor
	stored.Style.PrimaryColor = "#000000"
	stored.Style.DarkMode = true
	blob, err := json.Marshal(stored)
	s.Require().NoError(err)
	s.expectGet("acme", []byte(blob))

	cfg, err := s.store.Load("acme")

	s.NoError(err)
	s.Equal(stored, cfg)
}

func (s *ConfigStoreTestSuite) TestLoadPartialConfigurationKeepsDefaults() {
	s.expectGet("acme", `{"recipientType":"business"}`)

	cfg, err := s.store.Load("acme")

	s.NoError(err)
	s.Equal(constants.RecipientBusiness, cfg.RecipientType)
	s.Equal(model.DefaultWidgetConfig().EnabledSteps, cfg.EnabledSteps)
	s.Equal(model.DefaultWidgetConfig().Style, cfg.Style)
}

func (s *ConfigStoreTestSuite) TestLoadFallsBackToDefaults() {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"missing", nil},
		{"malformed", `{"enabledSteps": [`},
		{"unknown step", `{"enabledSteps":["profile","survey"]}`},
		{"duplicate method", `{"enabledPayoutMethods":["crypto","crypto"]}`},
		{"unknown recipient", `{"recipientType":"robot"}`},
		{"unexpected type", int64(42)},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectGet("acme", tt.value)

			cfg, err := s.store.Load("acme")

			s.NoError(err)
			s.Equal(model.DefaultWidgetConfig(), cfg)
		})
	}
}

func (s *ConfigStoreTestSuite) TestLoadQueryError() {
	s.sqlMock.ExpectQuery(QueryGetConfig.Query).WithArgs("acme").WillReturnError(errors.New("connection refused"))

	_, err := s.store.Load("acme")

	s.Error(err)
}

func (s *ConfigStoreTestSuite) TestSaveUpsertsBlob() {
	cfg := model.DefaultWidgetConfig()
	cfg.RecipientType = constants.RecipientContractor
	blob, err := json.Marshal(cfg)
	s.Require().NoError(err)

	s.sqlMock.ExpectExec(QueryUpsertConfig.Query).WithArgs("acme", string(blob)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.store.Save("acme", cfg))
}

func (s *ConfigStoreTestSuite) TestSaveRejectsInvalidConfiguration() {
	cfg := model.DefaultWidgetConfig()
	cfg.EnabledSteps = append(cfg.EnabledSteps, constants.StepProfile)

	err := s.store.Save("acme", cfg)

	s.ErrorIs(err, ErrInvalidConfiguration)
}

func (s *ConfigStoreTestSuite) TestSaveExecError() {
	s.sqlMock.ExpectExec(QueryUpsertConfig.Query).WillReturnError(errors.New("disk full"))

	s.Error(s.store.Save("acme", model.DefaultWidgetConfig()))
}

func (s *ConfigStoreTestSuite) TestEnsureSchemaAndDelete() {
	s.sqlMock.ExpectExec(QueryCreateConfigTable.Query).WillReturnResult(sqlmock.NewResult(0, 0))
	s.sqlMock.ExpectExec(QueryDeleteConfig.Query).WithArgs("acme").WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(s.store.EnsureSchema())
	s.NoError(s.store.Delete("acme"))
}

func (s *ConfigStoreTestSuite) TestDatabaseUnavailable() {
	p := &dbProviderMock{}
	p.On("GetDBClient").Return(nil, errors.New("no database"))
	store := NewConfigStore(p)

	_, err := store.Load("acme")
	s.Error(err)
	s.Error(store.Save("acme", model.DefaultWidgetConfig()))
	s.Error(store.EnsureSchema())
}
