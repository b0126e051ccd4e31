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

// Package session stores the state of in-progress payout flows.
package session

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/system/config"
)

// SessionStoreInterface stores flow sessions by flow id.
// Get returns a nil session without error when the flow is unknown or expired.
type SessionStoreInterface interface {
	Get(ctx context.Context, flowID string) (*model.FlowSession, error)
	Save(ctx context.Context, session model.FlowSession) error
	Delete(ctx context.Context, flowID string) error
	Close() error
}

// NewSessionStore creates the session store selected by the configuration.
func NewSessionStore(cfg config.SessionConfig) (SessionStoreInterface, error) {
	ttl := time.Duration(cfg.TTL) * time.Second
	switch cfg.Store {
	case config.SessionStoreMemory, "":
		return NewMemoryStore(ttl), nil
	case config.SessionStoreRedis:
		if cfg.RedisAddress == "" {
			return nil, fmt.Errorf("redis session store requires an address")
		}
		client, err := Connect(cfg.RedisAddress)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, cfg.KeyPrefix, ttl), nil
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Store)
	}
}

func cloneSession(s model.FlowSession) model.FlowSession {
	clone := s
	clone.State = s.State.Clone()
	clone.Config.EnabledSteps = slices.Clone(s.Config.EnabledSteps)
	clone.Config.EnabledPayoutMethods = slices.Clone(s.Config.EnabledPayoutMethods)
	clone.PendingNotifications = slices.Clone(s.PendingNotifications)
	return clone
}
