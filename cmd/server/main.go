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

package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/hirewise/recruiting-data-service/internal/system/config"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	dbprovider "github.com/hirewise/recruiting-data-service/internal/system/database/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
	"github.com/hirewise/recruiting-data-service/internal/system/managers"
	"github.com/hirewise/recruiting-data-service/internal/system/workers"
)

const configFile = "repository/conf/deployment.yaml"

func main() {

	rdsHome := getRDSHome()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	rdsConfig, err := config.LoadConfig(rdsHome, configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitializeRDSRuntime(rdsHome, rdsConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(rdsConfig.Log.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	initDatabaseSchema(rdsHome)

	// Background workers.
	workers.StartAnalyticsWorker()
	workers.StartResumeWorker()
	workers.StartRetentionWorker()

	serverAddr := fmt.Sprintf("%s:%d", rdsConfig.Addr.Host, rdsConfig.Addr.Port)
	handler := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}
	logger.Info("HireWise recruiting data service started", log.String("addr", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initDatabaseSchema applies the relational schema on startup.
func initDatabaseSchema(rdsHome string) {

	logger := log.GetLogger()

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		logger.Fatal("Failed to connect to the relational store", log.Error(err))
	}
	defer dbClient.Close()

	if err := dbClient.InitDatabase(rdsHome, "dbscripts/postgres.sql"); err != nil {
		logger.Fatal("Failed to apply the relational schema", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getRDSHome() string {

	rdsHomeFlag := flag.String("rdsHome", "", "Path to the recruiting data service home directory")
	flag.Parse()

	if *rdsHomeFlag != "" {
		return *rdsHomeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}
