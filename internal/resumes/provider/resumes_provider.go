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
	"github.com/hirewise/recruiting-data-service/internal/resumes/service"
)

// ResumesProviderInterface defines the interface for the resumes provider.
type ResumesProviderInterface interface {
	GetResumeService() service.ResumeServiceInterface
}

// ResumesProvider is the default implementation of the ResumesProviderInterface.
type ResumesProvider struct{}

// NewResumesProvider creates a new instance of ResumesProvider.
func NewResumesProvider() ResumesProviderInterface {
	return &ResumesProvider{}
}

// GetResumeService returns the resume service instance.
func (rp *ResumesProvider) GetResumeService() service.ResumeServiceInterface {
	return service.GetResumeService()
}
