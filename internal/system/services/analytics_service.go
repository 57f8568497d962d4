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

package services

import (
	"fmt"
	"net/http"

	"github.com/hirewise/recruiting-data-service/internal/analytics/handler"
)

type AnalyticsService struct {
	eventHandler *handler.EventHandler
}

func NewAnalyticsService(mux *http.ServeMux, apiBasePath string) *AnalyticsService {

	instance := &AnalyticsService{
		eventHandler: handler.NewEventHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *AnalyticsService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/analytics/events", apiBasePath), s.eventHandler.AddEvent)
	mux.HandleFunc(fmt.Sprintf("POST %s/analytics/events/batch", apiBasePath), s.eventHandler.AddEventsBatch)
	mux.HandleFunc(fmt.Sprintf("GET %s/analytics/events", apiBasePath), s.eventHandler.GetEvents)
	mux.HandleFunc(fmt.Sprintf("GET %s/analytics/events/{id}", apiBasePath), s.eventHandler.GetEvent)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/analytics/events/{id}", apiBasePath), s.eventHandler.DeleteEvent)
	mux.HandleFunc(fmt.Sprintf("POST %s/analytics/events/{id}/anonymize", apiBasePath), s.eventHandler.AnonymizeEvent)
	mux.HandleFunc(fmt.Sprintf("GET %s/analytics/dashboard", apiBasePath), s.eventHandler.GetDashboard)
}
