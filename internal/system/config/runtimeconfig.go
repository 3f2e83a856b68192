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

// ServerRuntime holds the runtime configuration for the documentation server.
type ServerRuntime struct {
	ServerHome string `yaml:"server_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *ServerRuntime
	once          sync.Once
)

// InitializeRuntime initializes the ServerRuntime configuration.
func InitializeRuntime(serverHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &ServerRuntime{
			ServerHome: serverHome,
			Config:     *config,
		}
	})

	return nil
}

// GetRuntime returns the ServerRuntime configuration.
func GetRuntime() *ServerRuntime {
	if runtimeConfig == nil {
		panic("ServerRuntime is not initialized")
	}
	return runtimeConfig
}

// IsRuntimeInitialized reports whether InitializeRuntime has been called.
func IsRuntimeInitialized() bool {
	return runtimeConfig != nil
}

// ResetRuntime resets the ServerRuntime.
// This should only be used in tests to reset the singleton state.
func ResetRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
