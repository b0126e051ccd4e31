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

package config

import "sync"

// PayoutRuntime holds the runtime configuration for the payout server.
type PayoutRuntime struct {
	ServerHome string `yaml:"server_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *PayoutRuntime
	once          sync.Once
)

// InitializePayoutRuntime initializes the PayoutRuntime configuration.
func InitializePayoutRuntime(serverHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &PayoutRuntime{
			ServerHome: serverHome,
			Config:     *config,
		}
	})

	return nil
}

// GetPayoutRuntime returns the PayoutRuntime configuration.
func GetPayoutRuntime() *PayoutRuntime {
	if runtimeConfig == nil {
		panic("PayoutRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetPayoutRuntime resets the PayoutRuntime.
// This should only be used in tests to reset the singleton state.
func ResetPayoutRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
