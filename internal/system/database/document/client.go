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

package document

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hirewise/recruiting-data-service/internal/system/config"
)

var (
	database *mongo.Database
	mu       sync.Mutex
)

// GetDatabase returns the shared document database handle, connecting on
// first use with the configured URI.
func GetDatabase() (*mongo.Database, error) {
	mu.Lock()
	defer mu.Unlock()

	if database != nil {
		return database, nil
	}

	storeConfig := config.GetRDSRuntime().Config.DocumentStore

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(storeConfig.URI))
	if err != nil {
		return nil, err
	}

	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	database = mongoClient.Database(storeConfig.Database)
	return database, nil
}

// Ping round-trips to the document store so readiness checks see the current
// connection state, not the cached handle.
func Ping(ctx context.Context) error {

	db, err := GetDatabase()
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// OverrideDatabase replaces the shared handle. Used by tests.
func OverrideDatabase(db *mongo.Database) {
	mu.Lock()
	defer mu.Unlock()
	database = db
}
