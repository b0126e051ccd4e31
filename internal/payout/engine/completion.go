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

package engine

import (
	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

// NewFlowState returns the initial state of a run: the first resolved step, nothing selected.
func NewFlowState(cfg model.FlowConfiguration, instanceID string) model.FlowState {
	return model.FlowState{
		InstanceID:       instanceID,
		ResolvedSteps:    ResolveSteps(cfg, ""),
		ActiveIndex:      0,
		BankVerification: constants.VerificationIdle,
	}
}

// Restart discards the run and starts over with a new instance id.
func Restart(cfg model.FlowConfiguration, instanceID string) model.FlowState {
	return NewFlowState(cfg, instanceID)
}

// ChangePayoutMethod leaves the dashboard and returns to method selection.
// The previous selection stays as a pre-filled choice.
func ChangePayoutMethod(state model.FlowState) model.FlowState {
	next := state.Clone()
	next.IsComplete = false
	next.ShowingMethodDetail = false
	next.ActiveIndex = next.IndexOf(constants.StepPayout)
	return next
}

// Summarize builds the completion summary handed to the host.
func Summarize(flowID string, state model.FlowState) model.FlowSummary {
	summary := model.FlowSummary{
		FlowID:               flowID,
		SelectedMethod:       state.SelectedMethod,
		SelectedDetailOption: state.SelectedDetailOption,
	}
	if HasAdvanceTiers(state.SelectedMethod) && state.SelectedAdvanceTier != "" {
		summary.SelectedAdvanceTier = state.SelectedAdvanceTier
		summary.FeePercent = FeeFor(state.SelectedAdvanceTier)
	}
	return summary
}
