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

// Package renderer turns the flow state into declarative step views.
package renderer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/messages"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

// StepRenderContext is the slice of flow state a step renderer may read.
type StepRenderContext struct {
	Step             constants.StepID
	IsFirstStep      bool
	IsLastStep       bool
	RecipientType    constants.RecipientType
	BankVerification constants.VerificationStatus
	UploadProgress   int
	EnabledMethods   []constants.PayoutMethod
	SelectedMethod   constants.PayoutMethod
	Printer          *messages.Printer
}

// StepRenderer renders the view of one onboarding step.
type StepRenderer interface {
	Render(ctx StepRenderContext) model.View
}

// MethodDetailContext is the slice of flow state a method-detail renderer may read.
type MethodDetailContext struct {
	Method         constants.PayoutMethod
	SelectedOption string
	SelectedTier   constants.AdvanceTier
	PreviewAmount  float64
	Printer        *messages.Printer
}

// MethodDetailRenderer renders the detail capture of one payout method.
type MethodDetailRenderer interface {
	Render(ctx MethodDetailContext) model.View
	DetailOptions() []string
}

// RegistryInterface renders views and exposes the detail options of each payout method.
type RegistryInterface interface {
	Validate() error
	DetailOptions(method constants.PayoutMethod) []string
	Render(cfg model.FlowConfiguration, state model.FlowState, previewAmount float64,
		printer *messages.Printer) (model.View, error)
}

// ErrRendererNotFound is returned when no renderer is registered for a step or payout method.
var ErrRendererNotFound = errors.New("renderer not found")

// Registry maps steps and payout methods to their renderers.
type Registry struct {
	steps   map[constants.StepID]StepRenderer
	methods map[constants.PayoutMethod]MethodDetailRenderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		steps:   make(map[constants.StepID]StepRenderer),
		methods: make(map[constants.PayoutMethod]MethodDetailRenderer),
	}
}

// NewDefaultRegistry creates a registry with the built-in renderer of every step and payout method.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterStep(constants.StepProfile, &profileRenderer{})
	r.RegisterStep(constants.StepPayout, &payoutRenderer{})
	r.RegisterStep(constants.StepBank, &bankRenderer{})
	r.RegisterStep(constants.StepTax, &taxRenderer{})
	r.RegisterStep(constants.StepKYC, &kycRenderer{})

	r.RegisterMethod(constants.MethodBankTransfer, newFieldsRenderer(
		model.InputData{Name: "routingNumber", Type: "text", Required: true},
		model.InputData{Name: "accountNumber", Type: "text", Required: true},
	))
	r.RegisterMethod(constants.MethodCrypto, newFieldsRenderer(
		model.InputData{Name: "walletAddress", Type: "text", Required: true},
		model.InputData{Name: "network", Type: "text", Required: true},
	))
	r.RegisterMethod(constants.MethodCardPayment, newFieldsRenderer(
		model.InputData{Name: "cardNumber", Type: "text", Required: true},
		model.InputData{Name: "expiry", Type: "text", Required: true},
	))
	r.RegisterMethod(constants.MethodDigitalWallet, newOptionsRenderer(
		[]string{"paypal", "venmo", "cashApp", "applePay", "googlePay"},
		model.InputData{Name: "accountEmail", Type: "email", Required: true},
	))
	r.RegisterMethod(constants.MethodPrepaidCard, newOptionsRenderer(
		[]string{"visa", "mastercard"},
		model.InputData{Name: "shippingAddress", Type: "text", Required: true},
	))
	r.RegisterMethod(constants.MethodGiftCard, newOptionsRenderer(
		[]string{"amazon", "walmart", "target", "starbucks"},
		model.InputData{Name: "deliveryEmail", Type: "email", Required: true},
	))
	r.RegisterMethod(constants.MethodAdvancedPayment, &advanceRenderer{})
	r.RegisterMethod(constants.MethodEarlyAccess, &advanceRenderer{})
	return r
}

// RegisterStep sets the renderer of a step.
func (r *Registry) RegisterStep(step constants.StepID, renderer StepRenderer) {
	r.steps[step] = renderer
}

// RegisterMethod sets the detail renderer of a payout method.
func (r *Registry) RegisterMethod(method constants.PayoutMethod, renderer MethodDetailRenderer) {
	r.methods[method] = renderer
}

// Validate fails if any configurable step or payout method has no renderer.
func (r *Registry) Validate() error {
	var errs []error
	for _, step := range constants.ConfigurableSteps {
		if _, ok := r.steps[step]; !ok {
			errs = append(errs, fmt.Errorf("%w: step %s", ErrRendererNotFound, step))
		}
	}
	for _, method := range constants.AllPayoutMethods {
		if _, ok := r.methods[method]; !ok {
			errs = append(errs, fmt.Errorf("%w: payout method %s", ErrRendererNotFound, method))
		}
	}
	return errors.Join(errs...)
}

// DetailOptions returns the sub-options offered for the payout method.
func (r *Registry) DetailOptions(method constants.PayoutMethod) []string {
	renderer, ok := r.methods[method]
	if !ok {
		return nil
	}
	return slices.Clone(renderer.DetailOptions())
}

// Render renders the view of the current step of the flow.
func (r *Registry) Render(cfg model.FlowConfiguration, state model.FlowState, previewAmount float64,
	printer *messages.Printer) (model.View, error) {
	if state.IsComplete {
		return renderDashboard(state, printer), nil
	}

	step := state.CurrentStep()
	if step == constants.StepMethodDetail {
		renderer, ok := r.methods[state.SelectedMethod]
		if !ok {
			return model.View{}, fmt.Errorf("%w: payout method %s", ErrRendererNotFound, state.SelectedMethod)
		}
		return renderer.Render(MethodDetailContext{
			Method:         state.SelectedMethod,
			SelectedOption: state.SelectedDetailOption,
			SelectedTier:   state.SelectedAdvanceTier,
			PreviewAmount:  previewAmount,
			Printer:        printer,
		}), nil
	}

	renderer, ok := r.steps[step]
	if !ok {
		return model.View{}, fmt.Errorf("%w: step %s", ErrRendererNotFound, step)
	}
	return renderer.Render(StepRenderContext{
		Step:             step,
		IsFirstStep:      state.ActiveIndex == 0,
		IsLastStep:       state.IsLastStep(),
		RecipientType:    cfg.RecipientType,
		BankVerification: state.BankVerification,
		UploadProgress:   state.UploadProgress,
		EnabledMethods:   slices.Clone(cfg.EnabledPayoutMethods),
		SelectedMethod:   state.SelectedMethod,
		Printer:          printer,
	}), nil
}

func renderDashboard(state model.FlowState, printer *messages.Printer) model.View {
	method := printer.Text(messages.MethodLabelKey(string(state.SelectedMethod)))
	view := model.View{
		StepID:      constants.StepDashboard,
		Title:       printer.Text(messages.StepTitleKey(string(constants.StepDashboard))),
		Description: printer.Text(messages.StepDescriptionKey(string(constants.StepDashboard)), method),
		Actions: []model.Action{
			{ID: constants.ActionChangeMethod, Label: printer.Text(messages.KeyActionChange), Primary: true},
			{ID: constants.ActionBack, Label: printer.Text(messages.KeyActionBack)},
			{ID: constants.ActionRestart, Label: printer.Text(messages.KeyActionRestart)},
		},
		AdditionalData: map[string]string{"method": string(state.SelectedMethod)},
	}
	if state.SelectedDetailOption != "" {
		view.AdditionalData["detailOption"] = state.SelectedDetailOption
	}
	if state.SelectedAdvanceTier != "" {
		view.AdditionalData["advanceTier"] = string(state.SelectedAdvanceTier)
	}
	return view
}
