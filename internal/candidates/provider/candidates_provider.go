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

package provider

import (
	"github.com/hirewise/recruiting-data-service/internal/candidates/service"
)

// CandidatesProviderInterface defines the interface for the candidates provider.
type CandidatesProviderInterface interface {
	GetCandidateService() service.CandidateServiceInterface
}

// CandidatesProvider is the default implementation of the CandidatesProviderInterface.
type CandidatesProvider struct{}

// NewCandidatesProvider creates a new instance of CandidatesProvider.
func NewCandidatesProvider() CandidatesProviderInterface {
	return &CandidatesProvider{}
}

// GetCandidateService returns the candidate service instance.
func (cp *CandidatesProvider) GetCandidateService() service.CandidateServiceInterface {
	return service.GetCandidateService()
}
