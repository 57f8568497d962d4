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

	"github.com/hirewise/recruiting-data-service/internal/resumes/handler"
)

type ResumeService struct {
	resumeHandler *handler.ResumeHandler
}

func NewResumeService(mux *http.ServeMux, apiBasePath string) *ResumeService {

	instance := &ResumeService{
		resumeHandler: handler.NewResumeHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *ResumeService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/resumes/upload", apiBasePath), s.resumeHandler.UploadResume)
	mux.HandleFunc(fmt.Sprintf("GET %s/resumes", apiBasePath), s.resumeHandler.GetResumes)
	mux.HandleFunc(fmt.Sprintf("GET %s/resumes/{id}", apiBasePath), s.resumeHandler.GetResume)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/resumes/{id}", apiBasePath), s.resumeHandler.DeleteResume)
}
