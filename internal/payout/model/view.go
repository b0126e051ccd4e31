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

package model

import (
	"time"

	"github.com/asgardeo/payoutwidget/internal/payout/constants"
)

// NotificationKind classifies a toast shown by the widget.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
)

// Notification is a fire-and-forget message for the notification surface.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
}

// InputData represents an input field the widget must collect on a step.
type InputData struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Action represents a control the widget renders; posting its ID back drives the flow.
type Action struct {
	ID       constants.ActionID `json:"id"`
	Label    string             `json:"label"`
	Primary  bool               `json:"primary,omitempty"`
	Disabled bool               `json:"disabled,omitempty"`
}

// Option is a selectable choice such as a payout method or a wallet provider.
type Option struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Selected bool              `json:"selected,omitempty"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// View is the declarative rendering of the current step.
type View struct {
	StepID         constants.StepID  `json:"stepId"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	Inputs         []InputData       `json:"inputs,omitempty"`
	Options        []Option          `json:"options,omitempty"`
	Actions        []Action          `json:"actions,omitempty"`
	AdditionalData map[string]string `json:"additionalData,omitempty"`
}

// FlowSession is the stored form of one flow run. Config is the snapshot taken when the run started.
// PendingNotifications holds notifications raised by simulated operations until the next response.
type FlowSession struct {
	FlowID               string         `json:"flowId"`
	ConfigKey            string         `json:"configKey"`
	Config               WidgetConfig   `json:"config"`
	State                FlowState      `json:"state"`
	Locale               string         `json:"locale"`
	RecipientEmail       string         `json:"recipientEmail,omitempty"`
	PendingNotifications []Notification `json:"pendingNotifications,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// FlowRequest represents the flow action API request body.
type FlowRequest struct {
	Action string            `json:"action"`
	Inputs map[string]string `json:"inputs"`
}

// StartFlowRequest represents the flow start API request body.
type StartFlowRequest struct {
	ConfigKey      string `json:"configKey"`
	Locale         string `json:"locale"`
	RecipientEmail string `json:"recipientEmail"`
}

// Selection is the current selection exposed to the widget and the dashboard.
type Selection struct {
	Method       constants.PayoutMethod `json:"method,omitempty"`
	DetailOption string                 `json:"detailOption,omitempty"`
	AdvanceTier  constants.AdvanceTier  `json:"advanceTier,omitempty"`
	FeePercent   int                    `json:"feePercent,omitempty"`
}

// FlowResponse represents the flow API response body.
type FlowResponse struct {
	FlowID        string             `json:"flowId"`
	FlowStatus    string             `json:"flowStatus"`
	StepID        constants.StepID   `json:"stepId,omitempty"`
	ActiveIndex   int                `json:"activeIndex"`
	Steps         []constants.StepID `json:"steps"`
	View          *View              `json:"view,omitempty"`
	Selection     Selection          `json:"selection"`
	Style         StyleTokens        `json:"style"`
	Notifications []Notification     `json:"notifications,omitempty"`
}
