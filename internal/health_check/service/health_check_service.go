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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hirewise/recruiting-data-service/internal/system/database/document"
	"github.com/hirewise/recruiting-data-service/internal/system/database/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

const pingTimeout = 5 * time.Second

// Status reports the health of the service and its storage dependencies.
type Status struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() (*Status, error)
}

// HealthCheckService is the default implementation.
type HealthCheckService struct{}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{}
}

// CheckReadiness pings the relational and document stores. A degraded
// status is returned together with an error naming the failing dependency.
func (h HealthCheckService) CheckReadiness() (*Status, error) {

	logger := log.GetLogger()
	status := &Status{
		Status:       "healthy",
		Dependencies: map[string]string{"postgres": "up", "mongodb": "up"},
	}
	var firstErr error

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		logger.Warn("Relational store unreachable", log.Error(err))
		status.Dependencies["postgres"] = "down"
		firstErr = fmt.Errorf("relational store unreachable: %w", err)
	} else {
		dbClient.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := document.Ping(ctx); err != nil {
		logger.Warn("Document store unreachable", log.Error(err))
		status.Dependencies["mongodb"] = "down"
		if firstErr == nil {
			firstErr = fmt.Errorf("document store unreachable: %w", err)
		}
	}

	if firstErr != nil {
		status.Status = "degraded"
	}
	return status, firstErr
}
