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

// Package flowexec exposes the payout onboarding flow over HTTP.
package flowexec

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/asgardeo/payoutwidget/internal/notification"
	"github.com/asgardeo/payoutwidget/internal/notification/email"
	"github.com/asgardeo/payoutwidget/internal/payout/configstore"
	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/engine"
	"github.com/asgardeo/payoutwidget/internal/payout/messages"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/payout/renderer"
	"github.com/asgardeo/payoutwidget/internal/payout/session"
	"github.com/asgardeo/payoutwidget/internal/payout/simulation"
	"github.com/asgardeo/payoutwidget/internal/system/error/serviceerror"
	"github.com/asgardeo/payoutwidget/internal/system/log"
	sysutils "github.com/asgardeo/payoutwidget/internal/system/utils"
)

// FlowServiceInterface defines the operations of the payout flow service.
type FlowServiceInterface interface {
	StartFlow(ctx context.Context, req model.StartFlowRequest) (*model.FlowResponse, *serviceerror.ServiceError)
	GetFlow(ctx context.Context, flowID string) (*model.FlowResponse, *serviceerror.ServiceError)
	ExecuteAction(ctx context.Context, flowID string, action string,
		inputs map[string]string) (*model.FlowResponse, *serviceerror.ServiceError)
	EndFlow(ctx context.Context, flowID string) *serviceerror.ServiceError
	GetConfiguration(configKey string) (*model.WidgetConfig, *serviceerror.ServiceError)
	SaveConfiguration(configKey string, cfg model.WidgetConfig) *serviceerror.ServiceError
	SendEmail(ctx context.Context, req email.EmailRequest) (*email.EmailResult, *serviceerror.ServiceError)
}

// serviceSettings holds the runtime settings of the flow service.
type serviceSettings struct {
	development           bool
	defaultConfigKey      string
	defaultLocale         string
	previewAmount         float64
	bankVerificationDelay time.Duration
	uploadTick            time.Duration
	emailTimeout          time.Duration
}

// flowNotifierFunc returns the notifier that receives the notifications of a flow.
type flowNotifierFunc func(flowID string) notification.NotifierInterface

type flowService struct {
	configStore  configstore.ConfigStoreInterface
	sessionStore session.SessionStoreInterface
	registry     renderer.RegistryInterface
	runner       simulation.RunnerInterface
	emailSender  email.EmailSenderInterface
	notifierFor  flowNotifierFunc
	settings     serviceSettings
	locks        sync.Map
	logger       *log.Logger
}

func newFlowService(configStore configstore.ConfigStoreInterface, sessionStore session.SessionStoreInterface,
	registry renderer.RegistryInterface, runner simulation.RunnerInterface, emailSender email.EmailSenderInterface,
	notifierFor flowNotifierFunc, settings serviceSettings) *flowService {
	if notifierFor == nil {
		notifierFor = func(string) notification.NotifierInterface { return nil }
	}
	return &flowService{
		configStore:  configStore,
		sessionStore: sessionStore,
		registry:     registry,
		runner:       runner,
		emailSender:  emailSender,
		notifierFor:  notifierFor,
		settings:     settings,
		logger:       log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FlowService")),
	}
}

// StartFlow creates a new run on a snapshot of the stored configuration.
func (s *flowService) StartFlow(ctx context.Context,
	req model.StartFlowRequest) (*model.FlowResponse, *serviceerror.ServiceError) {
	configKey := req.ConfigKey
	if configKey == "" {
		configKey = s.settings.defaultConfigKey
	}
	cfg, err := s.configStore.Load(configKey)
	if err != nil {
		s.logger.Error("Failed to load the widget configuration", log.String("configKey", configKey), log.Error(err))
		return nil, &constants.ErrorRetrievingConfiguration
	}

	locale := req.Locale
	if locale == "" {
		locale = s.settings.defaultLocale
	}

	now := time.Now().UTC()
	flowSession := &model.FlowSession{
		FlowID:         sysutils.GenerateUUID(),
		ConfigKey:      configKey,
		Config:         cfg,
		Locale:         locale,
		RecipientEmail: req.RecipientEmail,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	collector := notification.NewCollector()
	flowSession.State = s.newController(flowSession, collector).Start(cfg.FlowConfiguration)

	s.logger.Debug("Starting payout flow", log.String(log.LoggerKeyFlowID, flowSession.FlowID),
		log.String("configKey", configKey))
	return s.respond(ctx, flowSession, collector)
}

// GetFlow returns the current view of the flow.
func (s *flowService) GetFlow(ctx context.Context, flowID string) (*model.FlowResponse, *serviceerror.ServiceError) {
	lock := s.lockFor(flowID)
	lock.Lock()
	defer lock.Unlock()

	flowSession, svcErr := s.loadSession(ctx, flowID)
	if svcErr != nil {
		return nil, svcErr
	}
	if len(flowSession.PendingNotifications) == 0 {
		return s.buildResponse(flowSession, notification.NewCollector())
	}
	return s.respond(ctx, flowSession, notification.NewCollector())
}

// ExecuteAction applies a client action to the flow.
func (s *flowService) ExecuteAction(ctx context.Context, flowID string, action string,
	inputs map[string]string) (*model.FlowResponse, *serviceerror.ServiceError) {
	lock := s.lockFor(flowID)
	lock.Lock()
	defer lock.Unlock()

	flowSession, svcErr := s.loadSession(ctx, flowID)
	if svcErr != nil {
		return nil, svcErr
	}

	logger := s.logger.With(log.String(log.LoggerKeyFlowID, flowID))
	logger.Debug("Executing flow action", log.String("action", action),
		log.String(log.LoggerKeyStepID, string(flowSession.State.CurrentStep())))

	collector := notification.NewCollector()
	controller := s.newController(flowSession, collector)
	cfg := flowSession.Config.FlowConfiguration
	state := flowSession.State

	switch constants.ActionID(action) {
	case constants.ActionNext, constants.ActionComplete:
		state = controller.Next(flowID, state)
	case constants.ActionBack:
		state = controller.Back(flowID, cfg, state)
	case constants.ActionSelectMethod:
		method, ok := inputs[constants.InputMethod]
		if !ok || method == "" {
			return nil, constants.ErrorMissingActionInput.WithDescription("The method input is required")
		}
		state = controller.SelectMethod(flowID, cfg, state, constants.PayoutMethod(method))
	case constants.ActionSelectOption:
		option, ok := inputs[constants.InputOption]
		if !ok || option == "" {
			return nil, constants.ErrorMissingActionInput.WithDescription("The option input is required")
		}
		next, err := controller.SelectOption(flowID, state, option)
		if err != nil {
			return nil, constants.ErrorProgrammingMisuse.WithDescription(err.Error())
		}
		state = next
	case constants.ActionSelectTier:
		tier, ok := inputs[constants.InputTier]
		if !ok || tier == "" {
			return nil, constants.ErrorMissingActionInput.WithDescription("The tier input is required")
		}
		next, err := controller.SelectTier(flowID, state, constants.AdvanceTier(tier))
		if err != nil {
			return nil, constants.ErrorProgrammingMisuse.WithDescription(err.Error())
		}
		state = next
	case constants.ActionVerifyBank:
		next, started := controller.BeginBankVerification(flowID, state)
		if started {
			s.scheduleBankVerification(flowID, next.InstanceID)
		}
		state = next
	case constants.ActionUpload:
		if controller.CanUploadDocument(flowID, state) {
			s.scheduleDocumentUpload(flowID, state.InstanceID)
		}
	case constants.ActionChangeMethod:
		state = controller.ChangeMethod(flowID, state)
	case constants.ActionRestart:
		cfgSnapshot, err := s.configStore.Load(flowSession.ConfigKey)
		if err != nil {
			logger.Error("Failed to reload the widget configuration", log.Error(err))
			return nil, &constants.ErrorRetrievingConfiguration
		}
		flowSession.Config = cfgSnapshot
		state = controller.Restart(flowID, cfgSnapshot.FlowConfiguration)
	default:
		logger.Debug("Unsupported flow action", log.String("action", action))
		return nil, &constants.ErrorUnsupportedAction
	}

	flowSession.State = state
	flowSession.UpdatedAt = time.Now().UTC()
	return s.respond(ctx, flowSession, collector)
}

// EndFlow aborts pending operations and discards the flow.
func (s *flowService) EndFlow(ctx context.Context, flowID string) *serviceerror.ServiceError {
	lock := s.lockFor(flowID)
	lock.Lock()
	defer lock.Unlock()

	flowSession, svcErr := s.loadSession(ctx, flowID)
	if svcErr != nil {
		return svcErr
	}
	s.newController(flowSession, notification.NewCollector()).Logout(flowID)
	if err := s.sessionStore.Delete(ctx, flowID); err != nil {
		s.logger.Error("Failed to delete flow session", log.String(log.LoggerKeyFlowID, flowID), log.Error(err))
		return &constants.ErrorStoringSession
	}
	s.locks.Delete(flowID)
	s.logger.Debug("Payout flow ended", log.String(log.LoggerKeyFlowID, flowID))
	return nil
}

// GetConfiguration returns the stored configuration or the default one.
func (s *flowService) GetConfiguration(configKey string) (*model.WidgetConfig, *serviceerror.ServiceError) {
	if configKey == "" {
		return nil, &constants.ErrorInvalidConfigKey
	}
	cfg, err := s.configStore.Load(configKey)
	if err != nil {
		s.logger.Error("Failed to load the widget configuration", log.String("configKey", configKey), log.Error(err))
		return nil, &constants.ErrorRetrievingConfiguration
	}
	return &cfg, nil
}

// SaveConfiguration validates and stores the configuration. Running flows keep their snapshot.
func (s *flowService) SaveConfiguration(configKey string, cfg model.WidgetConfig) *serviceerror.ServiceError {
	if configKey == "" {
		return &constants.ErrorInvalidConfigKey
	}
	if err := s.configStore.Save(configKey, cfg); err != nil {
		if errors.Is(err, configstore.ErrInvalidConfiguration) {
			return constants.ErrorInvalidConfiguration.WithDescription(err.Error())
		}
		s.logger.Error("Failed to store the widget configuration", log.String("configKey", configKey), log.Error(err))
		return &constants.ErrorPersistingConfiguration
	}
	return nil
}

// SendEmail runs the email-simulation utility.
func (s *flowService) SendEmail(ctx context.Context,
	req email.EmailRequest) (*email.EmailResult, *serviceerror.ServiceError) {
	if req.To == "" || req.Subject == "" {
		return nil, &constants.ErrorInvalidEmailRequest
	}
	result := s.emailSender.Send(ctx, req)
	return &result, nil
}

func (s *flowService) lockFor(flowID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(flowID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *flowService) loadSession(ctx context.Context, flowID string) (*model.FlowSession, *serviceerror.ServiceError) {
	if !sysutils.IsValidUUID(flowID) {
		return nil, &constants.ErrorInvalidFlowID
	}
	flowSession, err := s.sessionStore.Get(ctx, flowID)
	if err != nil {
		s.logger.Error("Failed to load flow session", log.String(log.LoggerKeyFlowID, flowID), log.Error(err))
		return nil, &constants.ErrorRetrievingSession
	}
	if flowSession == nil {
		return nil, &constants.ErrorInvalidFlowID
	}
	return flowSession, nil
}

// respond renders the response, then stores the session with its pending notifications drained.
func (s *flowService) respond(ctx context.Context, flowSession *model.FlowSession,
	collector *notification.Collector) (*model.FlowResponse, *serviceerror.ServiceError) {
	resp, svcErr := s.buildResponse(flowSession, collector)
	if svcErr != nil {
		return nil, svcErr
	}
	flowSession.PendingNotifications = nil
	if err := s.sessionStore.Save(ctx, *flowSession); err != nil {
		s.logger.Error("Failed to store flow session", log.String(log.LoggerKeyFlowID, flowSession.FlowID),
			log.Error(err))
		return nil, &constants.ErrorStoringSession
	}
	return resp, nil
}

func (s *flowService) buildResponse(flowSession *model.FlowSession,
	collector *notification.Collector) (*model.FlowResponse, *serviceerror.ServiceError) {
	state := flowSession.State
	view, err := s.registry.Render(flowSession.Config.FlowConfiguration, state, s.settings.previewAmount,
		messages.NewPrinter(flowSession.Locale))
	if err != nil {
		s.logger.Error("Failed to render the flow view", log.String(log.LoggerKeyFlowID, flowSession.FlowID),
			log.Error(err))
		return nil, &constants.ErrorRenderingView
	}

	status := constants.FlowStatusIncomplete
	stepID := state.CurrentStep()
	if state.IsComplete {
		status = constants.FlowStatusComplete
		stepID = constants.StepDashboard
	}

	selection := model.Selection{
		Method:       state.SelectedMethod,
		DetailOption: state.SelectedDetailOption,
		AdvanceTier:  state.SelectedAdvanceTier,
	}
	if engine.HasAdvanceTiers(state.SelectedMethod) && state.SelectedAdvanceTier != "" {
		selection.FeePercent = engine.FeeFor(state.SelectedAdvanceTier)
	}

	notifications := append([]model.Notification{}, flowSession.PendingNotifications...)
	notifications = append(notifications, collector.Notifications()...)

	return &model.FlowResponse{
		FlowID:        flowSession.FlowID,
		FlowStatus:    string(status),
		StepID:        stepID,
		ActiveIndex:   state.ActiveIndex,
		Steps:         state.ResolvedSteps,
		View:          &view,
		Selection:     selection,
		Style:         flowSession.Config.Style,
		Notifications: notifications,
	}, nil
}

func (s *flowService) newController(flowSession *model.FlowSession,
	collector *notification.Collector) *engine.FlowController {
	return engine.NewFlowController(engine.ControllerOptions{
		Notifier:    notification.NewMulti(s.notifierFor(flowSession.FlowID), collector),
		Listener:    &completionHandler{service: s, recipientEmail: flowSession.RecipientEmail, locale: flowSession.Locale},
		Canceller:   s.runner,
		Options:     s.registry,
		Printer:     messages.NewPrinter(flowSession.Locale),
		Development: s.settings.development,
	})
}

func (s *flowService) scheduleBankVerification(flowID, instanceID string) {
	s.runner.Start(flowID, constants.OperationBankVerification, s.settings.bankVerificationDelay, func() {
		s.applyAsync(flowID, func(c *engine.FlowController, state model.FlowState) (model.FlowState, bool) {
			return c.CompleteBankVerification(flowID, state, instanceID)
		})
	})
}

func (s *flowService) scheduleDocumentUpload(flowID, instanceID string) {
	s.runner.StartProgress(flowID, constants.OperationDocumentUpload, s.settings.uploadTick, func(percent int) {
		s.applyAsync(flowID, func(c *engine.FlowController, state model.FlowState) (model.FlowState, bool) {
			// Intermediate reports of an upload cancelled while waiting for the lock are dropped.
			if percent < 100 && !s.runner.IsPending(flowID, constants.OperationDocumentUpload) {
				return state, false
			}
			return c.ApplyUploadProgress(flowID, state, instanceID, percent)
		})
	})
}

// applyAsync applies the result of a simulated operation under the flow lock. Notifications
// raised here are kept on the session and delivered with the next response.
func (s *flowService) applyAsync(flowID string,
	apply func(c *engine.FlowController, state model.FlowState) (model.FlowState, bool)) {
	lock := s.lockFor(flowID)
	lock.Lock()
	defer lock.Unlock()

	ctx := context.Background()
	flowSession, err := s.sessionStore.Get(ctx, flowID)
	if err != nil || flowSession == nil {
		s.logger.Debug("Dropping simulated operation result for a missing flow",
			log.String(log.LoggerKeyFlowID, flowID))
		return
	}

	collector := notification.NewCollector()
	next, applied := apply(s.newController(flowSession, collector), flowSession.State)
	if !applied {
		return
	}
	flowSession.State = next
	flowSession.PendingNotifications = append(flowSession.PendingNotifications, collector.Notifications()...)
	flowSession.UpdatedAt = time.Now().UTC()
	if err := s.sessionStore.Save(ctx, *flowSession); err != nil {
		s.logger.Error("Failed to store simulated operation result", log.String(log.LoggerKeyFlowID, flowID),
			log.Error(err))
	}
}

// completionHandler sends the confirmation email when a flow reaches the dashboard.
type completionHandler struct {
	service        *flowService
	recipientEmail string
	locale         string
}

func (h *completionHandler) OnFlowComplete(summary model.FlowSummary) {
	if h.recipientEmail == "" || h.service.emailSender == nil {
		return
	}
	printer := messages.NewPrinter(h.locale)
	req := email.EmailRequest{
		To:      h.recipientEmail,
		Subject: printer.Text(messages.KeyFlowCompleteTitle),
		HTML: "<p>" + printer.Text(messages.KeyFlowCompleteDescription,
			printer.Text(messages.MethodLabelKey(string(summary.SelectedMethod)))) + "</p>",
	}
	timeout := h.service.settings.emailTimeout
	sender := h.service.emailSender
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		sender.Send(ctx, req)
	}()
}
