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
	"github.com/hirewise/recruiting-data-service/internal/feedback/service"
)

// FeedbackProviderInterface defines the interface for the feedback provider.
type FeedbackProviderInterface interface {
	GetFeedbackService() service.FeedbackServiceInterface
}

// FeedbackProvider is the default implementation of the FeedbackProviderInterface.
type FeedbackProvider struct{}

// NewFeedbackProvider creates a new instance of FeedbackProvider.
func NewFeedbackProvider() FeedbackProviderInterface {
	return &FeedbackProvider{}
}

// GetFeedbackService returns the feedback service instance.
func (fp *FeedbackProvider) GetFeedbackService() service.FeedbackServiceInterface {
	return service.GetFeedbackService()
}
