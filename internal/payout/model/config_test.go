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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
)

type ModelTestSuite struct {
	suite.Suite
}

func TestModelTestSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) TestDefaultConfigurationIsValid() {
	cfg := DefaultWidgetConfig()
	s.NoError(cfg.Validate())
	s.False(cfg.IsMethodEnabled(constants.MethodAdvancedPayment))
	s.True(cfg.IsMethodEnabled(constants.MethodGiftCard))
}

func (s *ModelTestSuite) TestValidate() {
	valid := func() FlowConfiguration { return DefaultWidgetConfig().FlowConfiguration }

	tests := []struct {
		name   string
		mutate func(*FlowConfiguration)
		errMsg string
	}{
		{"unknown step", func(c *FlowConfiguration) {
			c.EnabledSteps = append(c.EnabledSteps, "welcome")
		}, `unknown step "welcome"`},
		{"method detail is not configurable", func(c *FlowConfiguration) {
			c.EnabledSteps = []constants.StepID{constants.StepMethodDetail}
		}, `unknown step "methodDetail"`},
		{"duplicate step", func(c *FlowConfiguration) {
			c.EnabledSteps = append(c.EnabledSteps, constants.StepBank)
		}, `step "bank" is enabled more than once`},
		{"unknown method", func(c *FlowConfiguration) {
			c.EnabledPayoutMethods = append(c.EnabledPayoutMethods, "cheque")
		}, `unknown payout method "cheque"`},
		{"duplicate method", func(c *FlowConfiguration) {
			c.EnabledPayoutMethods = append(c.EnabledPayoutMethods, constants.MethodCrypto)
		}, `payout method "crypto" is enabled more than once`},
		{"unknown recipient", func(c *FlowConfiguration) {
			c.RecipientType = "agency"
		}, `unknown recipient type "agency"`},
		{"missing recipient", func(c *FlowConfiguration) {
			c.RecipientType = ""
		}, `unknown recipient type ""`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := valid()
			tt.mutate(&cfg)
			s.EqualError(cfg.Validate(), tt.errMsg)
		})
	}
}

func (s *ModelTestSuite) TestEmptyListsAreValid() {
	cfg := FlowConfiguration{RecipientType: constants.RecipientInsured}
	s.NoError(cfg.Validate())
}

func TestRequiresTaxStep(t *testing.T) {
	for _, recipient := range constants.AllRecipientTypes {
		cfg := FlowConfiguration{RecipientType: recipient}
		expected := recipient == constants.RecipientVendor || recipient == constants.RecipientBusiness ||
			recipient == constants.RecipientContractor
		assert.Equal(t, expected, cfg.RequiresTaxStep(), string(recipient))
	}
}

func TestFlowStateSteps(t *testing.T) {
	state := FlowState{
		ResolvedSteps: []constants.StepID{constants.StepProfile, constants.StepPayout},
		ActiveIndex:   1,
	}
	assert.Equal(t, constants.StepPayout, state.ActiveStep())
	assert.Equal(t, constants.StepPayout, state.CurrentStep())
	assert.True(t, state.IsLastStep())
	assert.Equal(t, 0, state.IndexOf(constants.StepProfile))
	assert.Equal(t, -1, state.IndexOf(constants.StepBank))

	state.ShowingMethodDetail = true
	assert.Equal(t, constants.StepMethodDetail, state.CurrentStep())
	assert.Equal(t, constants.StepPayout, state.ActiveStep())

	state.ActiveIndex = 5
	assert.Equal(t, constants.StepID(""), state.ActiveStep())
	assert.False(t, state.IsLastStep())
}

func TestFlowStateCloneSharesNoSteps(t *testing.T) {
	state := FlowState{ResolvedSteps: []constants.StepID{constants.StepProfile, constants.StepPayout}}

	clone := state.Clone()
	clone.ResolvedSteps[0] = constants.StepTax

	assert.Equal(t, constants.StepProfile, state.ResolvedSteps[0])
}
