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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asgardeo/payoutwidget/internal/payout/model"
)

// Connect creates a redis client from a redis:// URL or a host:port address.
func Connect(address string) (*redis.Client, error) {
	if strings.HasPrefix(address, "redis://") || strings.HasPrefix(address, "rediss://") {
		opt, err := redis.ParseURL(address)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: address}), nil
}

// RedisStore keeps sessions in redis as JSON documents.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore creates a redis-backed store.
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (s *RedisStore) key(flowID string) string {
	return s.keyPrefix + flowID
}

// Get loads and decodes the session.
func (s *RedisStore) Get(ctx context.Context, flowID string) (*model.FlowSession, error) {
	raw, err := s.client.Get(ctx, s.key(flowID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session model.FlowSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", flowID, err)
	}
	return &session, nil
}

// Save encodes the session and refreshes its expiry.
func (s *RedisStore) Save(ctx context.Context, session model.FlowSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(session.FlowID), raw, s.ttl).Err()
}

// Delete removes the session.
func (s *RedisStore) Delete(ctx context.Context, flowID string) error {
	return s.client.Del(ctx, s.key(flowID)).Err()
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
