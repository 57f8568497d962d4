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

package constants

const ApiBasePath = "/api/v1"

// Relational tables.
const (
	EventTable           = "analytics_events"
	DashboardRollupTable = "dashboard_rollups"
	FeedbackPaymentTable = "feedback_payments"
)

// Document collections.
const (
	ResumeCollection    = "resumes"
	CandidateCollection = "candidates"
	ConsentCollection   = "consents"
)

// Analytics event statuses.
const (
	EventStatusActive     = "active"
	EventStatusAnonymized = "anonymized"
	EventStatusExpired    = "expired"
)

// AllowedEventTypes is the whitelist of accepted analytics event types.
var AllowedEventTypes = map[string]bool{
	"page_view":   true,
	"interaction": true,
	"swipe":       true,
	"upload":      true,
	"search":      true,
	"metric":      true,
}

// Consent statuses carried on an analytics event.
const (
	ConsentGranted = "granted"
	ConsentDenied  = "denied"
	ConsentUnknown = "unknown"
)

// Resume processing statuses.
const (
	ResumeStatusUploaded   = "uploaded"
	ResumeStatusProcessing = "processing"
	ResumeStatusProcessed  = "processed"
	ResumeStatusFailed     = "failed"
)

// Feedback payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRejected = "rejected"
)

// Operations checked against granted token scopes.
const (
	OpEventsWrite    = "events:write"
	OpEventsRead     = "events:read"
	OpEventsDelete   = "events:delete"
	OpDashboardRead  = "dashboard:read"
	OpCandidatesRead = "candidates:read"
	OpResumesWrite   = "resumes:write"
	OpResumesRead    = "resumes:read"
	OpResumesDelete  = "resumes:delete"
	OpConsentsRead   = "consents:read"
	OpConsentsWrite  = "consents:write"
	OpFeedbackWrite  = "feedback:write"
	OpFeedbackRead   = "feedback:read"
)

// Worker queue sizes.
const (
	DefaultQueueSize       = 1000
	DefaultResumeQueueSize = 100
)

// Candidate sort keys accepted by the browsing API.
var AllowedCandidateSortKeys = map[string]bool{
	"score":            true,
	"experience_years": true,
	"full_name":        true,
	"updated_at":       true,
}
