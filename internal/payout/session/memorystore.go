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

package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

// MemoryStore keeps sessions in process memory with a sliding expiry.
type MemoryStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryStore creates an in-memory store whose entries expire after ttl without writes.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(_ context.Context, flowID string) (*model.FlowSession, error) {
	value, found := m.cache.Get(flowID)
	if !found {
		return nil, nil
	}
	stored, ok := value.(model.FlowSession)
	if !ok {
		return nil, nil
	}
	session := cloneSession(stored)
	return &session, nil
}

// Save stores a copy of the session and refreshes its expiry.
func (m *MemoryStore) Save(_ context.Context, session model.FlowSession) error {
	m.cache.Set(session.FlowID, cloneSession(session), m.ttl)
	return nil
}

// Delete removes the session.
func (m *MemoryStore) Delete(_ context.Context, flowID string) error {
	m.cache.Delete(flowID)
	return nil
}

// Close releases the store.
func (m *MemoryStore) Close() error {
	m.cache.Flush()
	return nil
}
