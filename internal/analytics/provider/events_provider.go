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
	"github.com/hirewise/recruiting-data-service/internal/analytics/service"
)

// EventsProviderInterface defines the interface for the analytics provider.
type EventsProviderInterface interface {
	GetEventsService() service.EventsServiceInterface
	GetDashboardService() service.DashboardServiceInterface
}

// EventsProvider is the default implementation of the EventsProviderInterface.
type EventsProvider struct{}

// NewEventsProvider creates a new instance of EventsProvider.
func NewEventsProvider() EventsProviderInterface {
	return &EventsProvider{}
}

// GetEventsService returns the analytics events service instance.
func (ep *EventsProvider) GetEventsService() service.EventsServiceInterface {
	return service.GetEventsService()
}

// GetDashboardService returns the dashboard service instance.
func (ep *EventsProvider) GetDashboardService() service.DashboardServiceInterface {
	return service.GetDashboardService()
}
