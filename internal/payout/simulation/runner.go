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

// Package simulation runs the timer-driven operations that stand in for real integrations.
package simulation

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/asgardeo/payoutwidget/internal/system/log"
)

// RunnerInterface schedules simulated operations per flow.
type RunnerInterface interface {
	Start(flowID, operation string, delay time.Duration, onComplete func()) bool
	StartProgress(flowID, operation string, tick time.Duration, onProgress func(percent int)) bool
	IsPending(flowID, operation string) bool
	Cancel(flowID string)
	Shutdown()
}

type operationKey struct {
	flowID    string
	operation string
}

// Runner executes simulated operations on timers. At most one operation with a given
// name is pending per flow; callbacks of cancelled operations never run.
type Runner struct {
	mu        sync.Mutex
	pending   map[operationKey]context.Context
	cancels   map[operationKey]context.CancelFunc
	wg        sync.WaitGroup
	increment func() int
	logger    *log.Logger
}

// NewRunner creates a runner whose progress operations advance by pseudo-random steps.
func NewRunner() *Runner {
	return newRunner(func() int { return 5 + rand.IntN(16) })
}

func newRunner(increment func() int) *Runner {
	return &Runner{
		pending:   make(map[operationKey]context.Context),
		cancels:   make(map[operationKey]context.CancelFunc),
		increment: increment,
		logger:    log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SimulationRunner")),
	}
}

// Start runs onComplete after the delay. It returns false without scheduling anything when
// the same operation is already pending for the flow.
func (r *Runner) Start(flowID, operation string, delay time.Duration, onComplete func()) bool {
	key := operationKey{flowID: flowID, operation: operation}
	ctx, ok := r.register(key)
	if !ok {
		return false
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if r.finish(key, ctx) {
			onComplete()
		}
	}()
	return true
}

// StartProgress reports increasing progress every tick until it reaches 100.
// The final call always reports 100.
func (r *Runner) StartProgress(flowID, operation string, tick time.Duration, onProgress func(percent int)) bool {
	key := operationKey{flowID: flowID, operation: operation}
	ctx, ok := r.register(key)
	if !ok {
		return false
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		progress := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			progress = min(progress+r.increment(), 100)
			if progress == 100 {
				if r.finish(key, ctx) {
					onProgress(progress)
				}
				return
			}
			if ctx.Err() != nil {
				return
			}
			onProgress(progress)
		}
	}()
	return true
}

// IsPending reports whether the operation is scheduled for the flow.
func (r *Runner) IsPending(flowID, operation string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[operationKey{flowID: flowID, operation: operation}]
	return ok
}

// Cancel aborts every pending operation of the flow.
func (r *Runner) Cancel(flowID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, cancel := range r.cancels {
		if key.flowID != flowID {
			continue
		}
		cancel()
		delete(r.cancels, key)
		delete(r.pending, key)
		r.logger.Debug("Cancelled simulated operation", log.String(log.LoggerKeyFlowID, flowID),
			log.String(log.LoggerKeyOperation, key.operation))
	}
}

// Shutdown aborts all pending operations and waits for their goroutines to exit.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	for key, cancel := range r.cancels {
		cancel()
		delete(r.cancels, key)
		delete(r.pending, key)
	}
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Runner) register(key operationKey) (context.Context, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pending[key]; exists {
		r.logger.Debug("Simulated operation already pending", log.String(log.LoggerKeyFlowID, key.flowID),
			log.String(log.LoggerKeyOperation, key.operation))
		return nil, false
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.pending[key] = ctx
	r.cancels[key] = cancel
	return ctx, true
}

// finish removes the operation if it is still the registered one and was not cancelled.
func (r *Runner) finish(key operationKey, ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil || r.pending[key] != ctx {
		return false
	}
	r.cancels[key]()
	delete(r.cancels, key)
	delete(r.pending, key)
	return true
}
