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

package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/asgardeo/payoutwidget/internal/payout/model"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event is the payload published for every notification.
type Event struct {
	FlowID      string                 `json:"flowId,omitempty"`
	Kind        model.NotificationKind `json:"kind"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

// KafkaNotifier publishes notifications as events on a Kafka topic.
type KafkaNotifier struct {
	writer messageWriter
	flowID string
	logger *log.Logger
}

// NewKafkaNotifier creates a notifier backed by an asynchronous Kafka writer.
func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka notifier requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka notifier requires a topic")
	}
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "KafkaNotifier"))
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.Hash{},
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn("Failed to publish notification events",
					log.Int("count", len(messages)), log.Error(err))
			}
		},
	}
	return newKafkaNotifier(writer, logger), nil
}

func newKafkaNotifier(writer messageWriter, logger *log.Logger) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, logger: logger}
}

// ForFlow returns a notifier whose events are keyed by the flow id.
func (n *KafkaNotifier) ForFlow(flowID string) NotifierInterface {
	return &KafkaNotifier{writer: n.writer, flowID: flowID, logger: n.logger}
}

// Notify publishes the notification. Publish failures are logged and dropped.
func (n *KafkaNotifier) Notify(kind model.NotificationKind, title, description string) {
	payload, err := json.Marshal(Event{
		FlowID:      n.flowID,
		Kind:        kind,
		Title:       title,
		Description: description,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("Failed to encode notification event", log.Error(err))
		return
	}
	msg := kafka.Message{
		Key:   []byte(n.flowID),
		Value: payload,
		Time:  time.Now().UTC(),
	}
	if err := n.writer.WriteMessages(context.Background(), msg); err != nil {
		n.logger.Warn("Failed to publish notification event", log.Error(err))
	}
}

// Close flushes pending events and closes the writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
