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

// Package model defines the data structures of the payout onboarding flow.
package model

import (
	"fmt"
	"slices"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
)

// FlowConfiguration is the host-owned description of the onboarding flow.
type FlowConfiguration struct {
	EnabledSteps         []constants.StepID       `json:"enabledSteps"`
	EnabledPayoutMethods []constants.PayoutMethod `json:"enabledPayoutMethods"`
	RecipientType        constants.RecipientType  `json:"recipientType"`
}

// StyleTokens are presentation settings stored alongside the flow configuration.
// They are passed through to the widget untouched.
type StyleTokens struct {
	PrimaryColor    string `json:"primaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	BorderRadius    string `json:"borderRadius,omitempty"`
	ButtonStyle     string `json:"buttonStyle,omitempty"`
	LogoURL         string `json:"logoUrl,omitempty"`
	CompanyName     string `json:"companyName,omitempty"`
	DarkMode        bool   `json:"darkMode,omitempty"`
}

// WidgetConfig is the persisted configuration blob.
type WidgetConfig struct {
	FlowConfiguration
	Style StyleTokens `json:"style"`
}

// DefaultWidgetConfig returns the configuration used when nothing valid is persisted.
func DefaultWidgetConfig() WidgetConfig {
	return WidgetConfig{
		FlowConfiguration: FlowConfiguration{
			EnabledSteps:         []constants.StepID{constants.StepProfile, constants.StepBank, constants.StepTax},
			EnabledPayoutMethods: slices.Clone(constants.BasePayoutMethods),
			RecipientType:        constants.RecipientIndividual,
		},
		Style: StyleTokens{
			PrimaryColor:    "#2563eb",
			AccentColor:     "#10b981",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			FontFamily:      "Inter, sans-serif",
			BorderRadius:    "8px",
			ButtonStyle:     "rounded",
			CompanyName:     "Payouts",
		},
	}
}

// Validate checks that every identifier is known and that no identifier repeats.
func (c FlowConfiguration) Validate() error {
	seenSteps := make(map[constants.StepID]bool, len(c.EnabledSteps))
	for _, step := range c.EnabledSteps {
		if !slices.Contains(constants.ConfigurableSteps, step) {
			return fmt.Errorf("unknown step %q", step)
		}
		if seenSteps[step] {
			return fmt.Errorf("step %q is enabled more than once", step)
		}
		seenSteps[step] = true
	}

	seenMethods := make(map[constants.PayoutMethod]bool, len(c.EnabledPayoutMethods))
	for _, method := range c.EnabledPayoutMethods {
		if !slices.Contains(constants.AllPayoutMethods, method) {
			return fmt.Errorf("unknown payout method %q", method)
		}
		if seenMethods[method] {
			return fmt.Errorf("payout method %q is enabled more than once", method)
		}
		seenMethods[method] = true
	}

	if !slices.Contains(constants.AllRecipientTypes, c.RecipientType) {
		return fmt.Errorf("unknown recipient type %q", c.RecipientType)
	}
	return nil
}

// IsMethodEnabled reports whether the payout method may be selected.
func (c FlowConfiguration) IsMethodEnabled(method constants.PayoutMethod) bool {
	return slices.Contains(c.EnabledPayoutMethods, method)
}

// RequiresTaxStep reports whether the recipient type forces the tax form.
func (c FlowConfiguration) RequiresTaxStep() bool {
	switch c.RecipientType {
	case constants.RecipientVendor, constants.RecipientBusiness, constants.RecipientContractor:
		return true
	default:
		return false
	}
}
