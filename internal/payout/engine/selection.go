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
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

var (
	// ErrNoMethodSelected is returned when a detail option is chosen before a payout method.
	ErrNoMethodSelected = errors.New("no payout method selected")
	// ErrMethodNotEnabled is returned when the payout method is not enabled by the configuration.
	ErrMethodNotEnabled = errors.New("payout method not enabled")
	// ErrNotOnPayoutStep is returned when a payout method is chosen outside the method selection step.
	ErrNotOnPayoutStep = errors.New("payout method selection is not active")
	// ErrTierNotApplicable is returned when an advance tier is chosen for a method without tiers.
	ErrTierNotApplicable = errors.New("advance tier does not apply to the selected method")
	// ErrUnknownTier is returned for tiers outside the offered set.
	ErrUnknownTier = errors.New("unknown advance tier")
	// ErrEmptyOption is returned when an empty detail option is chosen.
	ErrEmptyOption = errors.New("detail option is empty")
)

// SelectMethod records the payout method. Choosing a different method discards the detail
// option and advance tier, and the step list is re-resolved for the new method.
func SelectMethod(cfg model.FlowConfiguration, state model.FlowState,
	method constants.PayoutMethod) (model.FlowState, error) {
	if state.IsComplete || state.CurrentStep() != constants.StepPayout {
		return state, ErrNotOnPayoutStep
	}
	if !cfg.IsMethodEnabled(method) {
		return state, fmt.Errorf("%w: %s", ErrMethodNotEnabled, method)
	}

	next := state.Clone()
	if next.SelectedMethod != method {
		next.SelectedDetailOption = ""
		next.SelectedAdvanceTier = ""
	}
	next.SelectedMethod = method
	next.ResolvedSteps = ResolveSteps(cfg, method)
	next.ActiveIndex = next.IndexOf(constants.StepPayout)
	return next, nil
}

// SelectDetailOption records the sub-option of the selected payout method.
func SelectDetailOption(state model.FlowState, option string) (model.FlowState, error) {
	if state.SelectedMethod == "" {
		return state, ErrNoMethodSelected
	}
	if option == "" {
		return state, ErrEmptyOption
	}
	next := state.Clone()
	next.SelectedDetailOption = option
	return next, nil
}

// SelectAdvanceTier records the advance tier for advanced payment and early access.
func SelectAdvanceTier(state model.FlowState, tier constants.AdvanceTier) (model.FlowState, error) {
	if state.SelectedMethod == "" {
		return state, ErrNoMethodSelected
	}
	if !HasAdvanceTiers(state.SelectedMethod) {
		return state, fmt.Errorf("%w: %s", ErrTierNotApplicable, state.SelectedMethod)
	}
	if !slices.Contains(constants.AdvanceTiers, tier) {
		return state, fmt.Errorf("%w: %s", ErrUnknownTier, tier)
	}
	next := state.Clone()
	next.SelectedAdvanceTier = tier
	return next, nil
}

// HasAdvanceTiers reports whether the method offers advance tiers.
func HasAdvanceTiers(method constants.PayoutMethod) bool {
	return method == constants.MethodAdvancedPayment || method == constants.MethodEarlyAccess
}

// FeeFor returns the fee percentage charged for an advance tier.
func FeeFor(tier constants.AdvanceTier) int {
	switch tier {
	case constants.AdvanceTier70:
		return 1
	case constants.AdvanceTier85:
		return 2
	default:
		return 3
	}
}

// AdvancePreview is the financial breakdown shown for an advance tier.
type AdvancePreview struct {
	Tier       constants.AdvanceTier
	Pending    float64
	Advanced   float64
	FeePercent int
	Fee        float64
	Net        float64
}

var tierShares = map[constants.AdvanceTier]float64{
	constants.AdvanceTier70:  0.70,
	constants.AdvanceTier85:  0.85,
	constants.AdvanceTier100: 1.00,
}

// PreviewAdvance computes the amount released for a tier, the fee and the net payout.
// Unknown tiers release the full amount.
func PreviewAdvance(tier constants.AdvanceTier, pending float64) AdvancePreview {
	share, ok := tierShares[tier]
	if !ok {
		share = 1
	}
	feePercent := FeeFor(tier)
	advanced := roundCents(pending * share)
	fee := roundCents(advanced * float64(feePercent) / 100)
	return AdvancePreview{
		Tier:       tier,
		Pending:    pending,
		Advanced:   advanced,
		FeePercent: feePercent,
		Fee:        fee,
		Net:        roundCents(advanced - fee),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
