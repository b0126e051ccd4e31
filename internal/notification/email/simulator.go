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

// Package email provides the email-simulation utility used by the onboarding flow.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/asgardeo/payoutwidget/internal/system/config"
	syshttp "github.com/asgardeo/payoutwidget/internal/system/http"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

const (
	noteSimulationOnly = "Email sending is simulated; no email provider is configured"
	noteDelivered      = "Email accepted by the provider"
)

// EmailRequest is an email to send.
type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// EmailResult reports the outcome of a send attempt. A false Success is expected
// when no provider is configured and is never a system error.
type EmailResult struct {
	Success bool   `json:"success"`
	Note    string `json:"note"`
}

// EmailSenderInterface sends emails.
type EmailSenderInterface interface {
	Send(ctx context.Context, req EmailRequest) EmailResult
}

type providerPayload struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Simulator sends emails through an optional HTTP provider endpoint.
type Simulator struct {
	providerURL string
	sender      string
	httpClient  syshttp.HTTPClientInterface
	logger      *log.Logger
}

// NewSimulator creates the email utility from the email configuration.
func NewSimulator(cfg config.EmailConfig) *Simulator {
	return newSimulator(cfg, syshttp.NewHTTPClientWithTimeout(time.Duration(cfg.Timeout)*time.Second))
}

func newSimulator(cfg config.EmailConfig, httpClient syshttp.HTTPClientInterface) *Simulator {
	return &Simulator{
		providerURL: cfg.ProviderURL,
		sender:      cfg.Sender,
		httpClient:  httpClient,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EmailSimulator")),
	}
}

// Send makes at most one delivery attempt. Every failure is reported in the result.
func (s *Simulator) Send(ctx context.Context, req EmailRequest) EmailResult {
	result := s.send(ctx, req)
	s.logger.Info("Email send attempted", log.String("to", log.MaskString(req.To)),
		log.Bool("success", result.Success), log.String("note", result.Note))
	return result
}

func (s *Simulator) send(ctx context.Context, req EmailRequest) EmailResult {
	if s.providerURL == "" {
		return EmailResult{Success: false, Note: noteSimulationOnly}
	}

	body, err := json.Marshal(providerPayload{From: s.sender, To: req.To, Subject: req.Subject, HTML: req.HTML})
	if err != nil {
		return EmailResult{Success: false, Note: fmt.Sprintf("Failed to encode the email: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.providerURL, bytes.NewReader(body))
	if err != nil {
		return EmailResult{Success: false, Note: fmt.Sprintf("Invalid email provider endpoint: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return EmailResult{Success: false, Note: fmt.Sprintf("Email provider unreachable: %v", err)}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Debug("Failed to close email provider response", log.Error(closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return EmailResult{Success: false, Note: fmt.Sprintf("Email provider responded with status %d", resp.StatusCode)}
	}
	return EmailResult{Success: true, Note: noteDelivered}
}
