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

// BeginBankVerification marks the bank verification as pending.
// It reports false when the bank step is not current or verification already started.
func BeginBankVerification(state model.FlowState) (model.FlowState, bool) {
	if state.IsComplete || state.CurrentStep() != constants.StepBank ||
		state.BankVerification == constants.VerificationPending ||
		state.BankVerification == constants.VerificationVerified {
		return state, false
	}
	next := state.Clone()
	next.BankVerification = constants.VerificationPending
	return next, true
}

// CompleteBankVerification applies the result of a verification started by the given run.
// Results of an earlier run, or arriving after the user left the bank step, are discarded.
func CompleteBankVerification(state model.FlowState, instanceID string) (model.FlowState, bool) {
	if state.InstanceID != instanceID || state.IsComplete ||
		state.CurrentStep() != constants.StepBank ||
		state.BankVerification != constants.VerificationPending {
		return state, false
	}
	next := state.Clone()
	next.BankVerification = constants.VerificationVerified
	return next, true
}

// abandonPendingVerification resets a verification whose operation was cancelled.
func abandonPendingVerification(state model.FlowState) model.FlowState {
	if state.BankVerification == constants.VerificationPending {
		state.BankVerification = constants.VerificationIdle
	}
	return state
}
