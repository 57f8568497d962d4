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

	"github.com/hirewise/recruiting-data-service/internal/candidates/handler"
)

type CandidateService struct {
	candidateHandler *handler.CandidateHandler
}

func NewCandidateService(mux *http.ServeMux, apiBasePath string) *CandidateService {

	instance := &CandidateService{
		candidateHandler: handler.NewCandidateHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *CandidateService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/candidates", apiBasePath), s.candidateHandler.GetCandidates)
	mux.HandleFunc(fmt.Sprintf("GET %s/candidates/{id}", apiBasePath), s.candidateHandler.GetCandidate)
}
