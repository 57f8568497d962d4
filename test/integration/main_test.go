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
	"os"
	"testing"

	"github.com/hirewise/recruiting-data-service/internal/system/config"
	"github.com/hirewise/recruiting-data-service/internal/system/database/document"
	"github.com/hirewise/recruiting-data-service/internal/system/database/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
	"github.com/hirewise/recruiting-data-service/internal/system/workers"
	"github.com/hirewise/recruiting-data-service/test/setup"
)

var (
	testPostgres *setup.TestPostgres
	testMongo    *setup.TestMongo
)

func TestMain(m *testing.M) {

	os.Setenv("TEST_MODE", "true")

	config.OverrideRDSRuntime(config.Config{
		Log: config.LogConfig{LogLevel: "error"},
		AuthServer: config.AuthServerConfig{
			JWTSecret: "integration-test-secret",
			Audience:  "recruiting-data-service",
		},
		Retention: config.RetentionConfig{
			PeriodDays:        90,
			SweepIntervalSecs: 3600,
		},
		Uploads: config.UploadConfig{
			MaxSizeBytes:      10 * 1024 * 1024,
			AllowedExtensions: []string{".pdf", ".doc", ".docx", ".txt"},
		},
		Dashboard: config.DashboardConfig{CacheTTLSecs: 1},
		Feedback: config.FeedbackConfig{
			PaymentAmount:   3.00,
			MinQualityScore: 3,
		},
	})

	if err := log.Init("error"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pg, err := setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Println("failed to start postgres container:", err)
		os.Exit(1)
	}
	testPostgres = pg

	if err := testPostgres.ApplySchema("../../dbscripts/postgres.sql"); err != nil {
		fmt.Println("failed to apply schema:", err)
		_ = testPostgres.Container.Terminate(ctx)
		os.Exit(1)
	}
	provider.SetTestDB(testPostgres.DB)

	mg, err := setup.SetupTestMongo(ctx)
	if err != nil {
		fmt.Println("failed to start mongodb container:", err)
		_ = testPostgres.Container.Terminate(ctx)
		os.Exit(1)
	}
	testMongo = mg
	document.OverrideDatabase(testMongo.Database)

	workers.StartAnalyticsWorker()
	workers.StartResumeWorker()

	code := m.Run()

	_ = testMongo.Client.Disconnect(ctx)
	_ = testMongo.Container.Terminate(ctx)
	_ = testPostgres.DB.Close()
	_ = testPostgres.Container.Terminate(ctx)

	os.Exit(code)
}
