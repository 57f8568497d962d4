/*
 * Copyright (c) 2025, HireWise, Inc. (https://hirewise.io).
 *
 * HireWise, Inc. licenses this file to you under the Apache License,
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

// RDSRuntime holds the runtime configuration for the recruiting data service.
type RDSRuntime struct {
	RDSHome string `yaml:"rds_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *RDSRuntime
	once          sync.Once
)

// InitializeRDSRuntime initializes the RDSRuntime configuration.
func InitializeRDSRuntime(rdsHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &RDSRuntime{
			RDSHome: rdsHome,
			Config:  *config,
		}
	})

	return nil
}

// GetRDSRuntime returns the RDSRuntime configuration.
func GetRDSRuntime() *RDSRuntime {

	if runtimeConfig == nil {
		panic("RDSRuntime is not initialized")
	}
	return runtimeConfig
}

// OverrideRDSRuntime replaces the runtime configuration. Used by tests.
func OverrideRDSRuntime(conf Config) {
	runtimeConfig = &RDSRuntime{
		Config: conf,
	}
}
