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
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/analytics/provider"
	"github.com/hirewise/recruiting-data-service/internal/analytics/store"
	consentmodel "github.com/hirewise/recruiting-data-service/internal/consent/model"
	consentprovider "github.com/hirewise/recruiting-data-service/internal/consent/provider"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/workers"
)

func newTestEvent(eventType string) model.Event {

	return model.Event{
		SessionID:      uuid.NewString(),
		EventType:      eventType,
		EventCategory:  "jobs",
		EventTimestamp: time.Now().UTC().Unix() - 10,
		Payload: map[string]interface{}{
			"page": "/jobs/backend-engineer",
		},
	}
}

func TestAddEventRoundTrip(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()

	stored, err := eventsService.AddEvent(newTestEvent("page_view"), nil)
	require.NoError(t, err)
	require.NotEmpty(t, stored.EventID)
	assert.Equal(t, "active", stored.Status)
	assert.Equal(t, "granted", stored.ConsentStatus)
	assert.Greater(t, stored.RetentionExpiry, stored.EventTimestamp)

	fetched, err := eventsService.GetEvent(stored.EventID)
	require.NoError(t, err)
	assert.Equal(t, stored.SessionID, fetched.SessionID)
	assert.Equal(t, "page_view", fetched.EventType)
	assert.Equal(t, "/jobs/backend-engineer", fetched.Payload["page"])
}

func TestAddEventUpsertsByEventID(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()

	event := newTestEvent("page_view")
	event.EventID = "upsert-" + uuid.NewString()
	sessionID := event.SessionID

	_, err := eventsService.AddEvent(event, nil)
	require.NoError(t, err)

	// Same id again with a changed category and payload replaces the record.
	replacement := event
	replacement.EventCategory = "profile"
	replacement.Payload = map[string]interface{}{
		"page": "/candidates/cand-go-senior",
	}
	_, err = eventsService.AddEvent(replacement, nil)
	require.NoError(t, err)

	fetched, err := eventsService.GetEvent(event.EventID)
	require.NoError(t, err)
	assert.Equal(t, "profile", fetched.EventCategory)
	assert.Equal(t, "/candidates/cand-go-senior", fetched.Payload["page"])

	rows, total, err := eventsService.GetEvents([]string{fmt.Sprintf("session_id:%s", sessionID)}, 0, 25, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, int64(1), total)
}

func TestAddEventConsentStatuses(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()
	consentService := consentprovider.NewConsentProvider().GetConsentService()

	t.Run("unknownSubjectIsAcceptedAsUnknown", func(t *testing.T) {
		event := newTestEvent("interaction")
		event.UserID = "user-without-consent-" + uuid.NewString()

		stored, err := eventsService.AddEvent(event, nil)
		require.NoError(t, err)
		assert.Equal(t, "unknown", stored.ConsentStatus)
	})

	t.Run("deniedSubjectIsRefused", func(t *testing.T) {
		subjectID := "declined-" + uuid.NewString()
		_, err := consentService.SetConsent(consentmodel.Consent{
			SubjectID:         subjectID,
			CollectionGranted: false,
		})
		require.NoError(t, err)

		event := newTestEvent("interaction")
		event.UserID = subjectID

		_, err = eventsService.AddEvent(event, nil)
		require.Error(t, err)
		var clientErr *apierrors.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, apierrors.CONSENT_DENIED.Code, clientErr.Code)
	})

	t.Run("grantedSubjectIsStored", func(t *testing.T) {
		subjectID := "granted-" + uuid.NewString()
		_, err := consentService.SetConsent(consentmodel.Consent{
			SubjectID:         subjectID,
			CollectionGranted: true,
			SharingGranted:    true,
		})
		require.NoError(t, err)

		event := newTestEvent("interaction")
		event.UserID = subjectID

		stored, err := eventsService.AddEvent(event, nil)
		require.NoError(t, err)
		assert.Equal(t, "granted", stored.ConsentStatus)
	})
}

func TestAddEventsBatchReportsFailures(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()

	bad := newTestEvent("telemetry")
	bad.EventID = "bad-batch-event"

	result, err := eventsService.AddEvents([]model.Event{
		newTestEvent("page_view"),
		bad,
		newTestEvent("swipe"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ProcessedCount)
	assert.Equal(t, []string{"bad-batch-event"}, result.FailedIDs)
}

func TestGetEventsFiltersAndPagination(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()

	sessionID := uuid.NewString()
	for i := 0; i < 3; i++ {
		event := newTestEvent("search")
		event.SessionID = sessionID
		event.EventTimestamp = time.Now().UTC().Unix() - int64(60-i)
		_, err := eventsService.AddEvent(event, nil)
		require.NoError(t, err)
	}

	events, total, err := eventsService.GetEvents([]string{fmt.Sprintf("session_id:%s", sessionID)}, 0, 25, 0)
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, int64(3), total)

	// The total reflects every matching row, not just the returned page.
	paged, pagedTotal, err := eventsService.GetEvents([]string{fmt.Sprintf("session_id:%s", sessionID)}, 0, 2, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
	assert.Equal(t, int64(3), pagedTotal)

	_, _, err = eventsService.GetEvents([]string{"drop table:x"}, 0, 25, 0)
	require.Error(t, err)
	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.INVALID_FILTER.Code, clientErr.Code)
}

func TestDeleteEvent(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()

	stored, err := eventsService.AddEvent(newTestEvent("page_view"), nil)
	require.NoError(t, err)

	require.NoError(t, eventsService.DeleteEvent(stored.EventID))

	_, err = eventsService.GetEvent(stored.EventID)
	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.EVENT_NOT_FOUND.Code, clientErr.Code)

	err = eventsService.DeleteEvent("no-such-event")
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.EVENT_NOT_FOUND.Code, clientErr.Code)
}

func TestAnonymizeEventClearsSubjectFields(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()

	event := newTestEvent("interaction")
	stored, err := eventsService.AddEvent(event, nil)
	require.NoError(t, err)

	require.NoError(t, eventsService.AnonymizeEvent(stored.EventID))

	fetched, err := eventsService.GetEvent(stored.EventID)
	require.NoError(t, err)
	assert.True(t, fetched.Anonymized)
	assert.Empty(t, fetched.UserID)
	assert.Empty(t, fetched.SessionID)
}

func TestRetentionSweepExpiresOldEvents(t *testing.T) {

	eventsService := provider.NewEventsProvider().GetEventsService()

	// 100 days old, past the 90 day retention window.
	event := newTestEvent("page_view")
	event.EventTimestamp = time.Now().UTC().Unix() - 100*24*3600
	stored, err := eventsService.AddEvent(event, nil)
	require.NoError(t, err)

	expired, err := store.ExpireEvents(time.Now().UTC().Unix())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, expired, int64(1))

	fetched, err := eventsService.GetEvent(stored.EventID)
	require.NoError(t, err)
	assert.Equal(t, "expired", fetched.Status)
}

func TestDashboardRollups(t *testing.T) {

	dashboardService := provider.NewEventsProvider().GetDashboardService()
	eventsService := provider.NewEventsProvider().GetEventsService()

	queue := &workers.AnalyticsWorkerQueue{}
	category := "rollup-" + uuid.NewString()[:8]
	for i := 0; i < 4; i++ {
		event := newTestEvent("page_view")
		event.EventCategory = category
		_, err := eventsService.AddEvent(event, queue)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		dashboard, err := dashboardService.GetDashboard(3600)
		if err != nil {
			return false
		}
		for _, bucket := range dashboard.Buckets {
			if bucket.EventCategory == category && bucket.Count == 4 {
				return true
			}
		}
		return false
	}, 5*time.Second, 100*time.Millisecond, "rollup worker did not aggregate the events")
}
