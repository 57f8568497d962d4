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

package model

// Event is a persisted record of a user interaction or system metric.
type Event struct {
	EventID         string                 `json:"event_id"`
	SessionID       string                 `json:"session_id"`
	UserID          string                 `json:"user_id,omitempty"`
	EventType       string                 `json:"event_type"`
	EventCategory   string                 `json:"event_category,omitempty"`
	Status          string                 `json:"status"`
	Payload         map[string]interface{} `json:"payload,omitempty"`
	EventTimestamp  int64                  `json:"event_timestamp"`
	ConsentStatus   string                 `json:"consent_status"`
	RetentionExpiry int64                  `json:"retention_expiry"`
	Anonymized      bool                   `json:"anonymized"`
}

// BatchResult reports the outcome of a batch ingest.
type BatchResult struct {
	ProcessedCount int      `json:"processed_count"`
	FailedIDs      []string `json:"failed_ids,omitempty"`
}

// DashboardBucket is one aggregated slot of the dashboard report.
type DashboardBucket struct {
	EventType     string `json:"event_type"`
	EventCategory string `json:"event_category"`
	Count         int64  `json:"count"`
}

// Dashboard is the aggregate view served to the metrics widgets.
type Dashboard struct {
	WindowSecs  int64             `json:"window_secs"`
	TotalEvents int64             `json:"total_events"`
	Buckets     []DashboardBucket `json:"buckets"`
	GeneratedAt int64             `json:"generated_at"`
}
