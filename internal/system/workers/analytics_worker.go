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
	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/analytics/store"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

var AnalyticsQueue chan model.Event

// StartAnalyticsWorker starts the background worker that folds ingested
// events into the dashboard rollup table.
func StartAnalyticsWorker() {

	AnalyticsQueue = make(chan model.Event, constants.DefaultQueueSize)

	go func() {
		for event := range AnalyticsQueue {
			if err := store.IncrementRollup(event); err != nil {
				log.GetLogger().Error("Failed to update dashboard rollup",
					log.String("eventId", event.EventID), log.Error(err))
			}
		}
	}()
}

func EnqueueEventForRollup(event model.Event) {
	if AnalyticsQueue != nil {
		AnalyticsQueue <- event
	}
}

// AnalyticsWorkerQueue adapts the rollup queue to the events service.
type AnalyticsWorkerQueue struct{}

func (q *AnalyticsWorkerQueue) Enqueue(event model.Event) {
	EnqueueEventForRollup(event)
}
