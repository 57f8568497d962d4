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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hirewise/recruiting-data-service/internal/health_check/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/utils"
)

// HealthHandler implements health and readiness endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new instance of HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth responds to /health requests with process liveness and
// dependency status.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {

	healthCheckService := provider.NewHealthCheckProvider().GetHealthCheckService()
	status, err := healthCheckService.CheckReadiness()
	if err != nil {
		writeEnvelope(w, http.StatusServiceUnavailable, utils.Envelope{Success: false, Data: status})
		return
	}
	utils.WriteSuccess(w, http.StatusOK, status)
}

// HandleReadiness responds to /ready requests.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {

	healthCheckService := provider.NewHealthCheckProvider().GetHealthCheckService()
	if _, err := healthCheckService.CheckReadiness(); err != nil {
		writeEnvelope(w, http.StatusServiceUnavailable, utils.Envelope{Success: false,
			Data: map[string]string{"status": "not ready", "reason": err.Error()}})
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, envelope utils.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(envelope)
}
