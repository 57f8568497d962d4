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

package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirewise/recruiting-data-service/internal/health_check/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/database/document"
)

func TestReadinessReportsHealthyDependencies(t *testing.T) {

	healthCheckService := provider.NewHealthCheckProvider().GetHealthCheckService()

	// Twice, so the second pass runs against the cached connections.
	for i := 0; i < 2; i++ {
		status, err := healthCheckService.CheckReadiness()
		require.NoError(t, err)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "up", status.Dependencies["postgres"])
		assert.Equal(t, "up", status.Dependencies["mongodb"])
	}
}

func TestReadinessSeesDocumentStoreOutage(t *testing.T) {

	ctx := context.Background()

	host, err := testMongo.Container.Host(ctx)
	require.NoError(t, err)
	port, err := testMongo.Container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	// A second client to the same store, disconnected to stand in for an
	// outage behind the cached handle.
	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	deadClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, deadClient.Disconnect(ctx))

	document.OverrideDatabase(deadClient.Database("recruiting_test"))
	defer document.OverrideDatabase(testMongo.Database)

	healthCheckService := provider.NewHealthCheckProvider().GetHealthCheckService()
	status, err := healthCheckService.CheckReadiness()
	require.Error(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "down", status.Dependencies["mongodb"])
	assert.Equal(t, "up", status.Dependencies["postgres"])
}
