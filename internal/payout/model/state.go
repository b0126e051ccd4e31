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
	"slices"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
)

// FlowState is the controller-owned state of one onboarding run.
// An empty SelectedMethod, SelectedDetailOption or SelectedAdvanceTier means nothing is selected.
type FlowState struct {
	InstanceID           string                       `json:"instanceId"`
	ResolvedSteps        []constants.StepID           `json:"resolvedSteps"`
	ActiveIndex          int                          `json:"activeIndex"`
	ShowingMethodDetail  bool                         `json:"showingMethodDetail"`
	SelectedMethod       constants.PayoutMethod       `json:"selectedMethod,omitempty"`
	SelectedDetailOption string                       `json:"selectedDetailOption,omitempty"`
	SelectedAdvanceTier  constants.AdvanceTier        `json:"selectedAdvanceTier,omitempty"`
	IsComplete           bool                         `json:"isComplete"`
	BankVerification     constants.VerificationStatus `json:"bankVerification"`
	UploadProgress       int                          `json:"uploadProgress"`
}

// ActiveStep returns the step at ActiveIndex, or an empty id when the index is out of range.
func (s FlowState) ActiveStep() constants.StepID {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.ResolvedSteps) {
		return ""
	}
	return s.ResolvedSteps[s.ActiveIndex]
}

// CurrentStep returns the step presented to the user, reporting the method-detail phase of the payout step.
func (s FlowState) CurrentStep() constants.StepID {
	step := s.ActiveStep()
	if step == constants.StepPayout && s.ShowingMethodDetail {
		return constants.StepMethodDetail
	}
	return step
}

// IsLastStep reports whether the active step is the final resolved step.
func (s FlowState) IsLastStep() bool {
	return s.ActiveIndex == len(s.ResolvedSteps)-1
}

// IndexOf returns the index of the step within the resolved steps, or -1.
func (s FlowState) IndexOf(step constants.StepID) int {
	return slices.Index(s.ResolvedSteps, step)
}

// Clone returns a copy that shares no slices with the receiver.
func (s FlowState) Clone() FlowState {
	clone := s
	clone.ResolvedSteps = slices.Clone(s.ResolvedSteps)
	return clone
}

// Rejection is a recoverable guard failure reported back to the user.
// Code is a message catalog key; Message is filled in when the rejection is localized.
type Rejection struct {
	Code    string           `json:"code"`
	Message string           `json:"message,omitempty"`
	Step    constants.StepID `json:"step"`
}

// FlowSummary is handed to the host when the flow reaches the dashboard.
type FlowSummary struct {
	FlowID               string                 `json:"flowId"`
	SelectedMethod       constants.PayoutMethod `json:"selectedMethod"`
	SelectedDetailOption string                 `json:"selectedDetailOption,omitempty"`
	SelectedAdvanceTier  constants.AdvanceTier  `json:"selectedAdvanceTier,omitempty"`
	FeePercent           int                    `json:"feePercent,omitempty"`
}
