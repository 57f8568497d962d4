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

package workers

import (
	"time"

	"github.com/hirewise/recruiting-data-service/internal/analytics/store"
	"github.com/hirewise/recruiting-data-service/internal/system/config"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

const defaultSweepIntervalSecs = 3600

// StartRetentionWorker starts the periodic sweep that expires and anonymizes
// analytics events past their retention window.
func StartRetentionWorker() {

	intervalSecs := config.GetRDSRuntime().Config.Retention.SweepIntervalSecs
	if intervalSecs <= 0 {
		intervalSecs = defaultSweepIntervalSecs
	}

	go func() {
		ticker := time.NewTicker(time.Duration(intervalSecs) * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			SweepExpiredEvents()
		}
	}()
}

// SweepExpiredEvents runs a single retention sweep.
func SweepExpiredEvents() {

	expired, err := store.ExpireEvents(time.Now().UTC().Unix())
	if err != nil {
		log.GetLogger().Error("Retention sweep failed", log.Error(err))
		return
	}
	if expired > 0 {
		log.GetLogger().Info("Retention sweep expired events",
			log.Int64("count", expired))
	}
}
