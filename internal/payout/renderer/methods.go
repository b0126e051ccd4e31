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
	"github.com/asgardeo/payoutwidget/internal/payout/engine"
	"github.com/asgardeo/payoutwidget/internal/payout/messages"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

func newDetailView(ctx MethodDetailContext, inputs ...model.InputData) model.View {
	p := ctx.Printer
	label := p.Text(messages.MethodLabelKey(string(ctx.Method)))
	return model.View{
		StepID:      constants.StepMethodDetail,
		Title:       label,
		Description: p.Text(messages.StepDescriptionKey(string(constants.StepMethodDetail)), label),
		Inputs:      inputs,
		Actions: []model.Action{
			{ID: constants.ActionBack, Label: p.Text(messages.KeyActionBack)},
			{ID: constants.ActionComplete, Label: p.Text(messages.KeyActionComplete), Primary: true},
		},
		AdditionalData: map[string]string{"method": string(ctx.Method)},
	}
}

// fieldsRenderer renders methods that only collect account fields.
type fieldsRenderer struct {
	inputs []model.InputData
}

func newFieldsRenderer(inputs ...model.InputData) *fieldsRenderer {
	return &fieldsRenderer{inputs: inputs}
}

func (r *fieldsRenderer) Render(ctx MethodDetailContext) model.View {
	return newDetailView(ctx, r.inputs...)
}

func (r *fieldsRenderer) DetailOptions() []string {
	return nil
}

// optionsRenderer renders methods that require a sub-option, such as a wallet provider.
type optionsRenderer struct {
	options []string
	inputs  []model.InputData
}

func newOptionsRenderer(options []string, inputs ...model.InputData) *optionsRenderer {
	return &optionsRenderer{options: options, inputs: inputs}
}

func (r *optionsRenderer) Render(ctx MethodDetailContext) model.View {
	view := newDetailView(ctx, r.inputs...)
	for _, option := range r.options {
		view.Options = append(view.Options, model.Option{
			ID:       option,
			Label:    ctx.Printer.Text(messages.OptionLabelKey(option)),
			Selected: option == ctx.SelectedOption,
		})
	}
	view.Actions = append(view.Actions, model.Action{ID: constants.ActionSelectOption, Label: view.Title})
	for i := range view.Actions {
		if view.Actions[i].ID == constants.ActionComplete && ctx.SelectedOption == "" {
			view.Actions[i].Disabled = true
		}
	}
	return view
}

func (r *optionsRenderer) DetailOptions() []string {
	return r.options
}

// advanceRenderer renders the tier choice and fee preview of advance payouts.
type advanceRenderer struct{}

func (r *advanceRenderer) Render(ctx MethodDetailContext) model.View {
	p := ctx.Printer
	view := newDetailView(ctx)
	for _, tier := range constants.AdvanceTiers {
		preview := engine.PreviewAdvance(tier, ctx.PreviewAmount)
		view.Options = append(view.Options, model.Option{
			ID:       string(tier),
			Label:    string(tier),
			Selected: tier == ctx.SelectedTier,
			Meta: map[string]string{
				"advanced":   p.Money(preview.Advanced),
				"feePercent": strconv.Itoa(preview.FeePercent),
				"fee":        p.Money(preview.Fee),
				"net":        p.Money(preview.Net),
			},
		})
	}
	view.Actions = append(view.Actions, model.Action{ID: constants.ActionSelectTier, Label: view.Title})

	if ctx.SelectedTier != "" {
		preview := engine.PreviewAdvance(ctx.SelectedTier, ctx.PreviewAmount)
		view.AdditionalData["tier"] = string(ctx.SelectedTier)
		view.AdditionalData["pendingLabel"] = p.Text(messages.KeyPreviewAmount)
		view.AdditionalData["pending"] = p.Money(preview.Pending)
		view.AdditionalData["feeLabel"] = p.Text(messages.KeyPreviewFee, preview.FeePercent)
		view.AdditionalData["fee"] = p.Money(preview.Fee)
		view.AdditionalData["netLabel"] = p.Text(messages.KeyPreviewNet)
		view.AdditionalData["net"] = p.Money(preview.Net)
	}
	return view
}

// DetailOptions is empty; tiers are chosen with the select_tier action.
func (r *advanceRenderer) DetailOptions() []string {
	return nil
}
