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

// Package notification provides the fire-and-forget notification surface of the payout flow.
package notification

import (
	"sync"

	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

// NotifierInterface delivers user-facing notifications. Callers never depend on the outcome.
type NotifierInterface interface {
	Notify(kind model.NotificationKind, title, description string)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a notifier that logs every notification.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LogNotifier")),
	}
}

// Notify logs the notification, at warn level for errors.
func (n *LogNotifier) Notify(kind model.NotificationKind, title, description string) {
	fields := []log.Field{
		log.String("kind", string(kind)),
		log.String("title", title),
		log.String("description", description),
	}
	if kind == model.NotificationError || kind == model.NotificationWarning {
		n.logger.Warn("Notification", fields...)
		return
	}
	n.logger.Info("Notification", fields...)
}

// Collector keeps notifications in memory so they can be returned with a response.
type Collector struct {
	mu            sync.Mutex
	notifications []model.Notification
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Notify records the notification.
func (c *Collector) Notify(kind model.NotificationKind, title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append(c.notifications, model.Notification{
		Kind:        kind,
		Title:       title,
		Description: description,
	})
}

// Notifications returns the recorded notifications in order.
func (c *Collector) Notifications() []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

type multiNotifier struct {
	notifiers []NotifierInterface
}

// NewMulti fans every notification out to all non-nil notifiers.
func NewMulti(notifiers ...NotifierInterface) NotifierInterface {
	m := &multiNotifier{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

func (m *multiNotifier) Notify(kind model.NotificationKind, title, description string) {
	for _, n := range m.notifiers {
		n.Notify(kind, title, description)
	}
}
