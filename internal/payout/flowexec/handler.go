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

package flowexec

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asgardeo/payoutwidget/internal/notification/email"
	"github.com/asgardeo/payoutwidget/internal/payout/constants"
	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/system/error/apierror"
	"github.com/asgardeo/payoutwidget/internal/system/error/serviceerror"
	"github.com/asgardeo/payoutwidget/internal/system/log"
	sysutils "github.com/asgardeo/payoutwidget/internal/system/utils"
)

const (
	flowIDParam    = "flowId"
	configKeyParam = "configKey"
)

// flowHandler handles the payout flow API requests.
type flowHandler struct {
	flowService FlowServiceInterface
	logger      *log.Logger
}

func newFlowHandler(flowService FlowServiceInterface) *flowHandler {
	return &flowHandler{
		flowService: flowService,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FlowHandler")),
	}
}

// HandleStartFlow starts a new flow. An empty body starts a flow on the default configuration.
func (h *flowHandler) HandleStartFlow(w http.ResponseWriter, r *http.Request) {
	req := &model.StartFlowRequest{}
	if r.ContentLength != 0 {
		decoded, err := sysutils.DecodeJSONBody[model.StartFlowRequest](r)
		if err != nil {
			h.writeDecodeError(w, err)
			return
		}
		req = decoded
	}

	req.ConfigKey = sysutils.SanitizeString(req.ConfigKey)
	req.Locale = sysutils.SanitizeString(req.Locale)
	req.RecipientEmail = sysutils.SanitizeString(req.RecipientEmail)

	resp, svcErr := h.flowService.StartFlow(r.Context(), *req)
	if svcErr != nil {
		handleServiceError(w, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusCreated, resp)
	h.logger.Debug("Flow start request handled successfully", log.String(log.LoggerKeyFlowID, resp.FlowID))
}

// HandleGetFlow returns the current view of a flow.
func (h *flowHandler) HandleGetFlow(w http.ResponseWriter, r *http.Request) {
	flowID := sysutils.SanitizeString(chi.URLParam(r, flowIDParam))

	resp, svcErr := h.flowService.GetFlow(r.Context(), flowID)
	if svcErr != nil {
		handleServiceError(w, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, resp)
}

// HandleExecuteAction applies an action to a flow.
func (h *flowHandler) HandleExecuteAction(w http.ResponseWriter, r *http.Request) {
	flowID := sysutils.SanitizeString(chi.URLParam(r, flowIDParam))

	flowR, err := sysutils.DecodeJSONBody[model.FlowRequest](r)
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}

	action := sysutils.SanitizeString(flowR.Action)
	inputs := sysutils.SanitizeStringMap(flowR.Inputs)

	resp, svcErr := h.flowService.ExecuteAction(r.Context(), flowID, action, inputs)
	if svcErr != nil {
		handleServiceError(w, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, resp)
	h.logger.Debug("Flow action handled successfully", log.String(log.LoggerKeyFlowID, flowID),
		log.String("action", action))
}

// HandleEndFlow logs out of a flow.
func (h *flowHandler) HandleEndFlow(w http.ResponseWriter, r *http.Request) {
	flowID := sysutils.SanitizeString(chi.URLParam(r, flowIDParam))

	if svcErr := h.flowService.EndFlow(r.Context(), flowID); svcErr != nil {
		handleServiceError(w, svcErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetConfiguration returns the widget configuration stored under a key.
func (h *flowHandler) HandleGetConfiguration(w http.ResponseWriter, r *http.Request) {
	configKey := sysutils.SanitizeString(chi.URLParam(r, configKeyParam))

	cfg, svcErr := h.flowService.GetConfiguration(configKey)
	if svcErr != nil {
		handleServiceError(w, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, cfg)
}

// HandlePutConfiguration stores the widget configuration under a key.
func (h *flowHandler) HandlePutConfiguration(w http.ResponseWriter, r *http.Request) {
	configKey := sysutils.SanitizeString(chi.URLParam(r, configKeyParam))

	cfg, err := sysutils.DecodeJSONBody[model.WidgetConfig](r)
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}

	if svcErr := h.flowService.SaveConfiguration(configKey, *cfg); svcErr != nil {
		handleServiceError(w, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, cfg)
}

// HandleSimulateEmail runs the email-simulation utility.
func (h *flowHandler) HandleSimulateEmail(w http.ResponseWriter, r *http.Request) {
	req, err := sysutils.DecodeJSONBody[email.EmailRequest](r)
	if err != nil {
		h.writeDecodeError(w, err)
		return
	}
	req.To = sysutils.SanitizeString(req.To)
	req.Subject = sysutils.SanitizeString(req.Subject)

	result, svcErr := h.flowService.SendEmail(r.Context(), *req)
	if svcErr != nil {
		handleServiceError(w, svcErr)
		return
	}
	sysutils.WriteJSON(w, http.StatusOK, result)
}

func (h *flowHandler) writeDecodeError(w http.ResponseWriter, err error) {
	h.logger.Debug("Failed to decode request body", log.Error(err))
	sysutils.WriteJSON(w, http.StatusBadRequest, constants.APIErrorRequestJSONDecodeError)
}

// handleServiceError writes a service error as an API error response.
func handleServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}
	sysutils.WriteJSON(w, svcErr.HTTPStatus(), errResp)
}
