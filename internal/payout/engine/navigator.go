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
	"github.com/asgardeo/payoutwidget/internal/payout/messages"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

// Advance moves the flow forward one step if the current step's guard allows it.
// A rejected advance returns the state unchanged together with the reason.
func Advance(state model.FlowState) (model.FlowState, *model.Rejection) {
	if state.IsComplete {
		return state, nil
	}

	next := state.Clone()
	switch state.CurrentStep() {
	case constants.StepPayout:
		if state.SelectedMethod == "" {
			return state, reject(constants.StepPayout, messages.KeySelectMethodFirst)
		}
		if bankIndex, ok := bankAfterPayout(state); ok {
			next.ActiveIndex = bankIndex
			return next, nil
		}
		next.ShowingMethodDetail = true
		return next, nil

	case constants.StepMethodDetail:
		if state.SelectedDetailOption == "" {
			if key, required := detailOptionRequirement(state.SelectedMethod); required {
				return state, reject(constants.StepMethodDetail, key)
			}
		}
		if bankIndex, ok := bankAfterPayout(state); ok {
			next.ShowingMethodDetail = false
			next.ActiveIndex = bankIndex
			return next, nil
		}
	}

	next.ShowingMethodDetail = false
	if state.IsLastStep() {
		next.IsComplete = true
		return next, nil
	}
	next.ActiveIndex++
	return next, nil
}

// Retreat moves the flow back one step. Leaving the method-detail step discards
// the method selection.
func Retreat(cfg model.FlowConfiguration, state model.FlowState) model.FlowState {
	next := state.Clone()
	if state.IsComplete {
		next.IsComplete = false
		return next
	}

	if state.CurrentStep() == constants.StepMethodDetail {
		next.ShowingMethodDetail = false
		next.SelectedMethod = ""
		next.SelectedDetailOption = ""
		next.SelectedAdvanceTier = ""
		next.ResolvedSteps = ResolveSteps(cfg, "")
		next.ActiveIndex = next.IndexOf(constants.StepPayout)
		return next
	}

	if state.ActiveIndex > 0 {
		next.ActiveIndex--
	}
	return next
}

// bankAfterPayout returns the bank index when bank transfer details are captured by a
// bank step resolved after the payout step.
func bankAfterPayout(state model.FlowState) (int, bool) {
	if state.SelectedMethod != constants.MethodBankTransfer {
		return 0, false
	}
	bankIndex := state.IndexOf(constants.StepBank)
	payoutIndex := state.IndexOf(constants.StepPayout)
	if bankIndex < 0 || bankIndex <= payoutIndex {
		return 0, false
	}
	return bankIndex, true
}

func detailOptionRequirement(method constants.PayoutMethod) (messages.Key, bool) {
	switch method {
	case constants.MethodDigitalWallet:
		return messages.KeySelectWalletProvider, true
	case constants.MethodPrepaidCard:
		return messages.KeySelectCardNetwork, true
	case constants.MethodGiftCard:
		return messages.KeySelectGiftCardRetailer, true
	default:
		return "", false
	}
}

func reject(step constants.StepID, key messages.Key) *model.Rejection {
	return &model.Rejection{Step: step, Code: string(key)}
}
