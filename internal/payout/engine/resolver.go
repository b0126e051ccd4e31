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

// Package engine implements the step flow of the payout onboarding widget.
//
// The transition functions in this package are pure: they take a FlowState and
// return a new one without side effects. FlowController layers notifications,
// completion callbacks and cancellation of simulated operations on top of them.
package engine

import (
	"slices"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

// ResolveSteps computes the ordered step list for the configuration and the selected method.
func ResolveSteps(cfg model.FlowConfiguration, method constants.PayoutMethod) []constants.StepID {
	steps := make([]constants.StepID, 0, len(cfg.EnabledSteps)+3)
	for _, step := range cfg.EnabledSteps {
		if !slices.Contains(steps, step) {
			steps = append(steps, step)
		}
	}

	if !slices.Contains(steps, constants.StepPayout) {
		at := 0
		if i := slices.Index(steps, constants.StepProfile); i >= 0 {
			at = i + 1
		}
		steps = slices.Insert(steps, at, constants.StepPayout)
	}

	if cfg.RequiresTaxStep() && !slices.Contains(steps, constants.StepTax) {
		steps = append(steps, constants.StepTax)
	}

	if method == constants.MethodBankTransfer && !slices.Contains(steps, constants.StepBank) {
		steps = slices.Insert(steps, slices.Index(steps, constants.StepPayout)+1, constants.StepBank)
	}
	return steps
}
