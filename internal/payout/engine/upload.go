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

// CanStartDocumentUpload reports whether an identity document upload may begin.
func CanStartDocumentUpload(state model.FlowState) bool {
	return !state.IsComplete && state.CurrentStep() == constants.StepKYC && state.UploadProgress == 0
}

// ApplyUploadProgress records the progress of an upload started by the given run.
// Progress never decreases and is capped at 100.
func ApplyUploadProgress(state model.FlowState, instanceID string, percent int) (model.FlowState, bool) {
	if state.InstanceID != instanceID || state.IsComplete ||
		state.CurrentStep() != constants.StepKYC || percent <= state.UploadProgress {
		return state, false
	}
	next := state.Clone()
	next.UploadProgress = min(percent, 100)
	return next, true
}

// abandonPendingUpload resets an upload whose operation was cancelled before finishing.
func abandonPendingUpload(state model.FlowState) model.FlowState {
	if state.UploadProgress < 100 {
		state.UploadProgress = 0
	}
	return state
}
