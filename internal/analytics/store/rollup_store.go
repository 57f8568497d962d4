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

package store

import (
	"fmt"

	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/database/provider"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

// Rollups bucket event counts per hour so the dashboard reads a small table
// instead of scanning the event log.
const rollupBucketSecs = 3600

// BucketFor returns the rollup bucket start for a unix timestamp.
func BucketFor(timestamp int64) int64 {
	return timestamp - (timestamp % rollupBucketSecs)
}

// IncrementRollup bumps the counter for the event's hour bucket.
func IncrementRollup(event model.Event) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.UPDATE_ROLLUP.Code,
			Message:     apierrors.UPDATE_ROLLUP.Message,
			Description: "Failed to get database client for updating rollups",
		}, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf(`
        INSERT INTO %s (bucket_start, event_type, event_category, event_count)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (bucket_start, event_type, event_category)
        DO UPDATE SET event_count = %s.event_count + 1`,
		constants.DashboardRollupTable, constants.DashboardRollupTable)

	_, err = dbClient.Exec(query, BucketFor(event.EventTimestamp), event.EventType, event.EventCategory)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update rollup for event with id: %s", event.EventID)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.UPDATE_ROLLUP.Code,
			Message:     apierrors.UPDATE_ROLLUP.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// FetchRollups returns per type/category totals for buckets starting at or
// after the given timestamp.
func FetchRollups(sinceTimestamp int64) ([]model.DashboardBucket, int64, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, 0, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.FETCH_DASHBOARD.Code,
			Message:     apierrors.FETCH_DASHBOARD.Message,
			Description: "Failed to get database client for fetching rollups",
		}, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf(`
        SELECT event_type, event_category, SUM(event_count) AS total
        FROM %s WHERE bucket_start >= $1
        GROUP BY event_type, event_category
        ORDER BY total DESC`, constants.DashboardRollupTable)

	results, err := dbClient.ExecuteQuery(query, BucketFor(sinceTimestamp))
	if err != nil {
		errorMsg := "Failed to fetch dashboard rollups"
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, 0, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.FETCH_DASHBOARD.Code,
			Message:     apierrors.FETCH_DASHBOARD.Message,
			Description: errorMsg,
		}, err)
	}

	buckets := make([]model.DashboardBucket, 0, len(results))
	var total int64
	for _, row := range results {
		bucket := model.DashboardBucket{}
		bucket.EventType, _ = row["event_type"].(string)
		bucket.EventCategory, _ = row["event_category"].(string)
		switch v := row["total"].(type) {
		case int64:
			bucket.Count = v
		case []byte:
			// SUM comes back as numeric on some drivers.
			fmt.Sscanf(string(v), "%d", &bucket.Count)
		}
		total += bucket.Count
		buckets = append(buckets, bucket)
	}
	return buckets, total, nil
}
