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
	"strconv"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/messages"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

// newStepView builds the common frame of a step view with its back and next actions.
func newStepView(ctx StepRenderContext, inputs ...model.InputData) model.View {
	p := ctx.Printer
	nextLabel := p.Text(messages.KeyActionNext)
	if ctx.IsLastStep {
		nextLabel = p.Text(messages.KeyActionFinish)
	}
	return model.View{
		StepID:      ctx.Step,
		Title:       p.Text(messages.StepTitleKey(string(ctx.Step))),
		Description: p.Text(messages.StepDescriptionKey(string(ctx.Step))),
		Inputs:      inputs,
		Actions: []model.Action{
			{ID: constants.ActionBack, Label: p.Text(messages.KeyActionBack), Disabled: ctx.IsFirstStep},
			{ID: constants.ActionNext, Label: nextLabel, Primary: true},
		},
	}
}

type profileRenderer struct{}

func (r *profileRenderer) Render(ctx StepRenderContext) model.View {
	inputs := []model.InputData{
		{Name: "fullName", Type: "text", Required: true},
		{Name: "email", Type: "email", Required: true},
		{Name: "phone", Type: "tel", Required: false},
	}
	switch ctx.RecipientType {
	case constants.RecipientBusiness, constants.RecipientVendor:
		inputs = append(inputs, model.InputData{Name: "companyName", Type: "text", Required: true})
	case constants.RecipientInsured:
		inputs = append(inputs, model.InputData{Name: "policyNumber", Type: "text", Required: true})
	}
	return newStepView(ctx, inputs...)
}

type payoutRenderer struct{}

func (r *payoutRenderer) Render(ctx StepRenderContext) model.View {
	view := newStepView(ctx)
	for _, method := range ctx.EnabledMethods {
		view.Options = append(view.Options, model.Option{
			ID:       string(method),
			Label:    ctx.Printer.Text(messages.MethodLabelKey(string(method))),
			Selected: method == ctx.SelectedMethod,
			Meta: map[string]string{
				"description": ctx.Printer.Text(messages.MethodDescriptionKey(string(method))),
			},
		})
	}
	view.Actions = append(view.Actions, model.Action{
		ID:    constants.ActionSelectMethod,
		Label: ctx.Printer.Text(messages.StepTitleKey(string(constants.StepPayout))),
	})
	for i := range view.Actions {
		if view.Actions[i].ID == constants.ActionNext && ctx.SelectedMethod == "" {
			view.Actions[i].Disabled = true
		}
	}
	return view
}

type bankRenderer struct{}

func (r *bankRenderer) Render(ctx StepRenderContext) model.View {
	view := newStepView(ctx,
		model.InputData{Name: "accountHolder", Type: "text", Required: true},
		model.InputData{Name: "routingNumber", Type: "text", Required: true},
		model.InputData{Name: "accountNumber", Type: "text", Required: true},
	)
	status := ctx.BankVerification
	if status == "" {
		status = constants.VerificationIdle
	}
	view.AdditionalData = map[string]string{"verificationStatus": string(status)}
	view.Actions = append(view.Actions, model.Action{
		ID:       constants.ActionVerifyBank,
		Label:    ctx.Printer.Text(messages.KeyActionVerify),
		Disabled: status != constants.VerificationIdle,
	})
	return view
}

type taxRenderer struct{}

func (r *taxRenderer) Render(ctx StepRenderContext) model.View {
	idField := model.InputData{Name: "ssn", Type: "text", Required: true}
	switch ctx.RecipientType {
	case constants.RecipientBusiness, constants.RecipientVendor:
		idField = model.InputData{Name: "ein", Type: "text", Required: true}
	case constants.RecipientContractor:
		idField = model.InputData{Name: "tin", Type: "text", Required: true}
	}
	view := newStepView(ctx,
		model.InputData{Name: "legalName", Type: "text", Required: true},
		idField,
		model.InputData{Name: "address", Type: "text", Required: true},
		model.InputData{Name: "certify", Type: "checkbox", Required: true},
	)
	view.AdditionalData = map[string]string{"form": "W-9"}
	return view
}

type kycRenderer struct{}

func (r *kycRenderer) Render(ctx StepRenderContext) model.View {
	view := newStepView(ctx,
		model.InputData{Name: "documentType", Type: "select", Required: true},
		model.InputData{Name: "documentFront", Type: "file", Required: true},
		model.InputData{Name: "documentBack", Type: "file", Required: false},
	)
	view.AdditionalData = map[string]string{"uploadProgress": strconv.Itoa(ctx.UploadProgress)}
	view.Actions = append(view.Actions, model.Action{
		ID:       constants.ActionUpload,
		Label:    ctx.Printer.Text(messages.StepTitleKey(string(constants.StepKYC))),
		Disabled: ctx.UploadProgress > 0,
	})
	return view
}
