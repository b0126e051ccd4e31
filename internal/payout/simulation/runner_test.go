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

package simulation

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RunnerTestSuite struct {
	suite.Suite
	runner *Runner
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) SetupTest() {
	s.runner = newRunner(func() int { return 30 })
}

func (s *RunnerTestSuite) TearDownTest() {
	s.runner.Shutdown()
}

func (s *RunnerTestSuite) TestStartRunsCallbackAfterDelay() {
	done := make(chan struct{})
	started := s.runner.Start("flow-1", "verify", 10*time.Millisecond, func() { close(done) })
	s.True(started)
	s.True(s.runner.IsPending("flow-1", "verify"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("operation did not complete")
	}
	s.Eventually(func() bool { return !s.runner.IsPending("flow-1", "verify") },
		time.Second, 5*time.Millisecond)
}

func (s *RunnerTestSuite) TestStartIsNotReentrant() {
	var calls atomic.Int32
	s.True(s.runner.Start("flow-1", "verify", 20*time.Millisecond, func() { calls.Add(1) }))
	s.False(s.runner.Start("flow-1", "verify", 20*time.Millisecond, func() { calls.Add(1) }))
	s.True(s.runner.Start("flow-2", "verify", 20*time.Millisecond, func() { calls.Add(1) }))

	s.Eventually(func() bool { return calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	s.Equal(int32(2), calls.Load())
}

func (s *RunnerTestSuite) TestCancelSuppressesCallback() {
	var calls atomic.Int32
	s.True(s.runner.Start("flow-1", "verify", 30*time.Millisecond, func() { calls.Add(1) }))
	s.True(s.runner.Start("flow-1", "upload", 30*time.Millisecond, func() { calls.Add(1) }))

	s.runner.Cancel("flow-1")

	s.False(s.runner.IsPending("flow-1", "verify"))
	s.False(s.runner.IsPending("flow-1", "upload"))
	time.Sleep(80 * time.Millisecond)
	s.Equal(int32(0), calls.Load())
}

func (s *RunnerTestSuite) TestRestartAfterCancel() {
	var calls atomic.Int32
	s.True(s.runner.Start("flow-1", "verify", 30*time.Millisecond, func() { calls.Add(10) }))
	s.runner.Cancel("flow-1")
	s.True(s.runner.Start("flow-1", "verify", 10*time.Millisecond, func() { calls.Add(1) }))

	s.Eventually(func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	s.Equal(int32(1), calls.Load())
}

func (s *RunnerTestSuite) TestProgressReachesHundred() {
	var mu sync.Mutex
	var reported []int
	done := make(chan struct{})
	s.True(s.runner.StartProgress("flow-1", "upload", 5*time.Millisecond, func(percent int) {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, percent)
		if percent == 100 {
			close(done)
		}
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("progress did not finish")
	}
	mu.Lock()
	defer mu.Unlock()
	s.Equal([]int{30, 60, 90, 100}, reported)
}

func (s *RunnerTestSuite) TestShutdownWaitsForOperations() {
	var calls atomic.Int32
	s.True(s.runner.Start("flow-1", "verify", time.Hour, func() { calls.Add(1) }))
	s.True(s.runner.StartProgress("flow-2", "upload", time.Hour, func(int) { calls.Add(1) }))

	s.runner.Shutdown()

	s.False(s.runner.IsPending("flow-1", "verify"))
	s.Equal(int32(0), calls.Load())
}

func TestNewRunnerIncrementRange(t *testing.T) {
	r := NewRunner()
	for i := 0; i < 100; i++ {
		v := r.increment()
		if v < 5 || v > 20 {
			t.Fatalf("increment %d out of range", v)
		}
	}
}
