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

package renderer

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/engine"
	"github.com/asgardeo/payoutwidget/internal/payout/messages"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *Registry
	printer  *messages.Printer
	cfg      model.FlowConfiguration
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = NewDefaultRegistry()
	s.printer = messages.NewPrinter("en-US")
	s.cfg = model.FlowConfiguration{
		EnabledSteps:         []constants.StepID{constants.StepProfile, constants.StepBank, constants.StepTax},
		EnabledPayoutMethods: constants.AllPayoutMethods,
		RecipientType:        constants.RecipientBusiness,
	}
}

func (s *RegistryTestSuite) TestDefaultRegistryIsComplete() {
	s.NoError(s.registry.Validate())
}

func (s *RegistryTestSuite) TestValidateReportsMissingRenderers() {
	r := NewRegistry()
	r.RegisterStep(constants.StepProfile, &profileRenderer{})

	err := r.Validate()

	s.ErrorIs(err, ErrRendererNotFound)
	s.Contains(err.Error(), "step payout")
	s.Contains(err.Error(), "payout method giftCard")
	s.NotContains(err.Error(), "step profile")
}

func (s *RegistryTestSuite) TestDetailOptions() {
	s.Equal([]string{"paypal", "venmo", "cashApp", "applePay", "googlePay"},
		s.registry.DetailOptions(constants.MethodDigitalWallet))
	s.Equal([]string{"visa", "mastercard"}, s.registry.DetailOptions(constants.MethodPrepaidCard))
	s.Equal([]string{"amazon", "walmart", "target", "starbucks"}, s.registry.DetailOptions(constants.MethodGiftCard))
	s.Empty(s.registry.DetailOptions(constants.MethodCrypto))
	s.Empty(s.registry.DetailOptions("unknown"))
}

func (s *RegistryTestSuite) TestRenderProfileStep() {
	state := engine.NewFlowState(s.cfg, "run-1")

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)

	s.Require().NoError(err)
	s.Equal(constants.StepProfile, view.StepID)
	s.Equal("Your profile", view.Title)
	s.True(hasInput(view, "companyName"))
	s.True(actionByID(view, constants.ActionBack).Disabled)
}

func (s *RegistryTestSuite) TestRenderPayoutStep() {
	state := engine.NewFlowState(s.cfg, "run-1")
	state.ActiveIndex = state.IndexOf(constants.StepPayout)

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)
	s.Require().NoError(err)
	s.Len(view.Options, len(constants.AllPayoutMethods))
	s.True(actionByID(view, constants.ActionNext).Disabled)

	state, err = engine.SelectMethod(s.cfg, state, constants.MethodCrypto)
	s.Require().NoError(err)
	view, err = s.registry.Render(s.cfg, state, 1000, s.printer)
	s.Require().NoError(err)
	s.False(actionByID(view, constants.ActionNext).Disabled)
	for _, option := range view.Options {
		s.Equal(option.ID == string(constants.MethodCrypto), option.Selected)
	}
}

func (s *RegistryTestSuite) TestRenderLastStepUsesFinishLabel() {
	state := engine.NewFlowState(s.cfg, "run-1")
	state.ActiveIndex = len(state.ResolvedSteps) - 1

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)

	s.Require().NoError(err)
	s.Equal(constants.StepTax, view.StepID)
	s.Equal("Finish", actionByID(view, constants.ActionNext).Label)
	s.True(hasInput(view, "ein"))
}

func (s *RegistryTestSuite) TestRenderBankStepReflectsVerification() {
	state := engine.NewFlowState(s.cfg, "run-1")
	state.ActiveIndex = state.IndexOf(constants.StepBank)
	state.BankVerification = constants.VerificationPending

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)

	s.Require().NoError(err)
	s.Equal("pending", view.AdditionalData["verificationStatus"])
	s.True(actionByID(view, constants.ActionVerifyBank).Disabled)
}

func (s *RegistryTestSuite) TestRenderMethodDetail() {
	state := engine.NewFlowState(s.cfg, "run-1")
	state.ActiveIndex = state.IndexOf(constants.StepPayout)
	state.SelectedMethod = constants.MethodGiftCard
	state.ShowingMethodDetail = true

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)
	s.Require().NoError(err)
	s.Equal(constants.StepMethodDetail, view.StepID)
	s.Len(view.Options, 4)
	s.True(actionByID(view, constants.ActionComplete).Disabled)

	state.SelectedDetailOption = "target"
	view, err = s.registry.Render(s.cfg, state, 1000, s.printer)
	s.Require().NoError(err)
	s.False(actionByID(view, constants.ActionComplete).Disabled)
}

func (s *RegistryTestSuite) TestRenderAdvancePreview() {
	state := engine.NewFlowState(s.cfg, "run-1")
	state.ActiveIndex = state.IndexOf(constants.StepPayout)
	state.SelectedMethod = constants.MethodAdvancedPayment
	state.SelectedAdvanceTier = constants.AdvanceTier85
	state.ShowingMethodDetail = true

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)

	s.Require().NoError(err)
	s.Len(view.Options, len(constants.AdvanceTiers))
	s.Equal("2", view.Options[1].Meta["feePercent"])
	s.Equal("85%", view.AdditionalData["tier"])
	s.Equal("Fee (2%)", view.AdditionalData["feeLabel"])
	s.NotEmpty(view.AdditionalData["net"])
}

func (s *RegistryTestSuite) TestRenderDashboard() {
	state := engine.NewFlowState(s.cfg, "run-1")
	state.SelectedMethod = constants.MethodBankTransfer
	state.IsComplete = true

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)

	s.Require().NoError(err)
	s.Equal(constants.StepDashboard, view.StepID)
	s.Equal("Payouts are sent via Bank transfer", view.Description)
	s.NotNil(actionByID(view, constants.ActionChangeMethod))
}

func (s *RegistryTestSuite) TestRenderMissingRenderer() {
	r := NewRegistry()
	state := engine.NewFlowState(s.cfg, "run-1")

	_, err := r.Render(s.cfg, state, 1000, s.printer)

	s.ErrorIs(err, ErrRendererNotFound)
}

func hasInput(view model.View, name string) bool {
	for _, input := range view.Inputs {
		if input.Name == name {
			return true
		}
	}
	return false
}

func actionByID(view model.View, id constants.ActionID) *model.Action {
	for i := range view.Actions {
		if view.Actions[i].ID == id {
			return &view.Actions[i]
		}
	}
	return nil
}

func (s *RegistryTestSuite) TestRenderKYCProgress() {
	s.cfg.EnabledSteps = []constants.StepID{constants.StepKYC}
	state := engine.NewFlowState(s.cfg, "run-1")
	state.ActiveIndex = state.IndexOf(constants.StepKYC)
	state.UploadProgress = 45

	view, err := s.registry.Render(s.cfg, state, 1000, s.printer)

	s.Require().NoError(err)
	s.Equal("45", view.AdditionalData["uploadProgress"])
	s.True(actionByID(view, constants.ActionUpload).Disabled)
}
