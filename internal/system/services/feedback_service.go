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

	"github.com/hirewise/recruiting-data-service/internal/feedback/handler"
)

type FeedbackService struct {
	feedbackHandler *handler.FeedbackHandler
}

func NewFeedbackService(mux *http.ServeMux, apiBasePath string) *FeedbackService {

	instance := &FeedbackService{
		feedbackHandler: handler.NewFeedbackHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *FeedbackService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/feedback/import", apiBasePath), s.feedbackHandler.ImportQuestionnaire)
	mux.HandleFunc(fmt.Sprintf("GET %s/feedback/payments", apiBasePath), s.feedbackHandler.GetPayments)
	mux.HandleFunc(fmt.Sprintf("GET %s/feedback/payments/{id}", apiBasePath), s.feedbackHandler.GetPayment)
	mux.HandleFunc(fmt.Sprintf("PUT %s/feedback/payments/{id}/status", apiBasePath), s.feedbackHandler.UpdatePaymentStatus)
}
