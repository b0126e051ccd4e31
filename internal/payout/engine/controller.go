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
	"slices"

	"github.com/asgardeo/payoutwidget/internal/notification"
	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/messages"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/system/log"
	"github.com/asgardeo/payoutwidget/internal/system/utils"
)

// CompletionListener is informed when a flow reaches the dashboard.
type CompletionListener interface {
	OnFlowComplete(summary model.FlowSummary)
}

// OperationCanceller aborts the simulated operations pending for a flow.
type OperationCanceller interface {
	Cancel(flowID string)
}

// DetailOptionProvider lists the sub-options offered for a payout method.
type DetailOptionProvider interface {
	DetailOptions(method constants.PayoutMethod) []string
}

// ControllerOptions carries the collaborators of a FlowController. Nil collaborators are skipped.
type ControllerOptions struct {
	Notifier    notification.NotifierInterface
	Listener    CompletionListener
	Canceller   OperationCanceller
	Options     DetailOptionProvider
	Printer     *messages.Printer
	Development bool
}

// FlowController applies user actions to a flow state and performs their side effects.
type FlowController struct {
	notifier    notification.NotifierInterface
	listener    CompletionListener
	canceller   OperationCanceller
	options     DetailOptionProvider
	printer     *messages.Printer
	development bool
	logger      *log.Logger
}

// NewFlowController creates a controller with the given collaborators.
func NewFlowController(opts ControllerOptions) *FlowController {
	printer := opts.Printer
	if printer == nil {
		printer = messages.NewPrinter("")
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notification.NewMulti()
	}
	return &FlowController{
		notifier:    notifier,
		listener:    opts.Listener,
		canceller:   opts.Canceller,
		options:     opts.Options,
		printer:     printer,
		development: opts.Development,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FlowController")),
	}
}

// Start creates the state of a new run.
func (c *FlowController) Start(cfg model.FlowConfiguration) model.FlowState {
	return NewFlowState(cfg, utils.GenerateUUID())
}

// Next advances the flow, notifying the user when a guard rejects the transition.
func (c *FlowController) Next(flowID string, state model.FlowState) model.FlowState {
	next, rejection := Advance(state)
	if rejection != nil {
		c.logger.Debug("Advance rejected", log.String(log.LoggerKeyFlowID, flowID),
			log.String(log.LoggerKeyStepID, string(rejection.Step)), log.String("reason", rejection.Code))
		c.notifyRejection(messages.Key(rejection.Code))
		return state
	}

	if !state.IsComplete && next.IsComplete {
		c.complete(flowID, next)
	}
	return next
}

// Back retreats the flow and aborts any simulated operation still pending.
func (c *FlowController) Back(flowID string, cfg model.FlowConfiguration, state model.FlowState) model.FlowState {
	c.cancel(flowID)
	return Retreat(cfg, abandonPending(state))
}

// SelectMethod records the payout method chosen on the method selection step.
func (c *FlowController) SelectMethod(flowID string, cfg model.FlowConfiguration, state model.FlowState,
	method constants.PayoutMethod) model.FlowState {
	next, err := SelectMethod(cfg, state, method)
	switch {
	case err == nil:
		c.logger.Debug("Payout method selected", log.String(log.LoggerKeyFlowID, flowID),
			log.String("method", string(method)))
		return next
	case errors.Is(err, ErrMethodNotEnabled):
		c.notifyRejection(messages.KeyMethodNotEnabled, c.methodLabel(method))
	default:
		c.notifyRejection(messages.KeyActionNotAvailable)
	}
	return state
}

// SelectOption records the detail option of the selected method.
// Choosing an option with no method selected is a caller error: it is returned in
// development mode and logged and ignored otherwise.
func (c *FlowController) SelectOption(flowID string, state model.FlowState, option string) (model.FlowState, error) {
	if state.SelectedMethod == "" {
		return state, c.misuse(flowID, fmt.Errorf("select detail option %q: %w", option, ErrNoMethodSelected))
	}
	if state.CurrentStep() != constants.StepMethodDetail {
		c.notifyRejection(messages.KeyActionNotAvailable)
		return state, nil
	}
	if c.options != nil && !slices.Contains(c.options.DetailOptions(state.SelectedMethod), option) {
		c.notifyRejection(messages.KeyUnknownOption, option)
		return state, nil
	}

	next, err := SelectDetailOption(state, option)
	if err != nil {
		c.notifyRejection(messages.KeyUnknownOption, option)
		return state, nil
	}
	return next, nil
}

// SelectTier records the advance tier of an advance payout method.
func (c *FlowController) SelectTier(flowID string, state model.FlowState,
	tier constants.AdvanceTier) (model.FlowState, error) {
	next, err := SelectAdvanceTier(state, tier)
	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, ErrNoMethodSelected):
		return state, c.misuse(flowID, fmt.Errorf("select advance tier %q: %w", tier, err))
	case errors.Is(err, ErrUnknownTier):
		c.notifyRejection(messages.KeyUnknownOption, string(tier))
	default:
		c.notifyRejection(messages.KeyTierNotApplicable)
	}
	return state, nil
}

// ChangeMethod returns from the dashboard to the method selection step.
func (c *FlowController) ChangeMethod(flowID string, state model.FlowState) model.FlowState {
	c.cancel(flowID)
	return ChangePayoutMethod(abandonPending(state))
}

// Restart discards the run and starts a new one on the same configuration.
func (c *FlowController) Restart(flowID string, cfg model.FlowConfiguration) model.FlowState {
	c.cancel(flowID)
	return Restart(cfg, utils.GenerateUUID())
}

// Logout aborts every simulated operation of the flow.
func (c *FlowController) Logout(flowID string) {
	c.cancel(flowID)
}

// BeginBankVerification starts verification on the bank step. It reports whether the
// simulated operation should be scheduled.
func (c *FlowController) BeginBankVerification(flowID string, state model.FlowState) (model.FlowState, bool) {
	next, started := BeginBankVerification(state)
	if !started {
		if state.CurrentStep() != constants.StepBank {
			c.notifyRejection(messages.KeyActionNotAvailable)
		}
		return state, false
	}
	c.logger.Debug("Bank verification started", log.String(log.LoggerKeyFlowID, flowID))
	c.notifier.Notify(model.NotificationInfo, c.printer.Text(messages.KeyBankVerificationStarted), "")
	return next, true
}

// CompleteBankVerification applies a verification result if it still belongs to the run.
func (c *FlowController) CompleteBankVerification(flowID string, state model.FlowState,
	instanceID string) (model.FlowState, bool) {
	next, applied := CompleteBankVerification(state, instanceID)
	if !applied {
		c.logger.Debug("Discarding stale bank verification result", log.String(log.LoggerKeyFlowID, flowID))
		return state, false
	}
	c.notifier.Notify(model.NotificationSuccess, c.printer.Text(messages.KeyBankVerifiedTitle),
		c.printer.Text(messages.KeyBankVerifiedDescription))
	return next, true
}

// CanUploadDocument reports whether a document upload may start, notifying the user if not.
func (c *FlowController) CanUploadDocument(flowID string, state model.FlowState) bool {
	if !CanStartDocumentUpload(state) {
		c.logger.Debug("Document upload not available", log.String(log.LoggerKeyFlowID, flowID))
		c.notifyRejection(messages.KeyActionNotAvailable)
		return false
	}
	return true
}

// ApplyUploadProgress applies upload progress if it still belongs to the run.
func (c *FlowController) ApplyUploadProgress(flowID string, state model.FlowState, instanceID string,
	percent int) (model.FlowState, bool) {
	next, applied := ApplyUploadProgress(state, instanceID, percent)
	if !applied {
		c.logger.Debug("Discarding stale upload progress", log.String(log.LoggerKeyFlowID, flowID),
			log.Int("percent", percent))
	}
	return next, applied
}

func (c *FlowController) complete(flowID string, state model.FlowState) {
	summary := Summarize(flowID, state)
	c.logger.Info("Payout flow completed", log.String(log.LoggerKeyFlowID, flowID),
		log.String("method", string(summary.SelectedMethod)))
	if c.listener != nil {
		c.listener.OnFlowComplete(summary)
	}
	c.notifier.Notify(model.NotificationSuccess, c.printer.Text(messages.KeyFlowCompleteTitle),
		c.printer.Text(messages.KeyFlowCompleteDescription, c.methodLabel(summary.SelectedMethod)))
}

func abandonPending(state model.FlowState) model.FlowState {
	return abandonPendingUpload(abandonPendingVerification(state.Clone()))
}

func (c *FlowController) misuse(flowID string, err error) error {
	if c.development {
		return err
	}
	c.logger.Warn("Ignoring invalid flow action", log.String(log.LoggerKeyFlowID, flowID), log.Error(err))
	return nil
}

func (c *FlowController) cancel(flowID string) {
	if c.canceller != nil {
		c.canceller.Cancel(flowID)
	}
}

func (c *FlowController) notifyRejection(key messages.Key, args ...interface{}) {
	c.notifier.Notify(model.NotificationError, c.printer.Text(messages.KeyValidationTitle),
		c.printer.Text(key, args...))
}

func (c *FlowController) methodLabel(method constants.PayoutMethod) string {
	return c.printer.Text(messages.MethodLabelKey(string(method)))
}
