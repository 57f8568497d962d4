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

package authz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hirewise/recruiting-data-service/internal/system/config"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

// ValidatePermission checks if the granted scopes include at least one of
// the scopes accepted for an operation.
func ValidatePermission(scopeStr string, operation string) bool {

	logger := log.GetLogger()
	if scopeStr == "" {
		logger.Debug(fmt.Sprintf("No scopes provided for operation: %s", operation))
		return false
	}

	requiredScopes := config.GetRDSRuntime().Config.AuthServer.RequiredScopes
	if requiredScopes == nil {
		logger.Debug(fmt.Sprintf("No scope configuration available for operation: %s", operation))
		return false
	}

	expectedScopes, ok := requiredScopes[operation]
	if !ok {
		return false
	}

	grantedScopes := strings.Split(scopeStr, " ")
	for _, expected := range expectedScopes {
		if slices.Contains(grantedScopes, expected) {
			return true
		}
	}
	logger.Debug(fmt.Sprintf("Granted scopes do not cover operation: %s", operation))
	return false
}
