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

package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/analytics/store"
	consentprovider "github.com/hirewise/recruiting-data-service/internal/consent/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/config"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

type EventsServiceInterface interface {
	AddEvent(event model.Event, queue EventQueue) (*model.Event, error)
	AddEvents(events []model.Event, queue EventQueue) (*model.BatchResult, error)
	GetEvents(filters []string, sinceTimestamp int64, limit, offset int) ([]model.Event, int64, error)
	GetEvent(eventID string) (*model.Event, error)
	DeleteEvent(eventID string) error
	AnonymizeEvent(eventID string) error
}

// EventsService is the default implementation of the EventsServiceInterface.
type EventsService struct{}

// GetEventsService creates a new instance of EventsService.
func GetEventsService() EventsServiceInterface {

	return &EventsService{}
}

// EventQueue is the enqueue side of the analytics worker. The worker in
// `workers` implements it.
type EventQueue interface {
	Enqueue(event model.Event)
}

// AddEvent validates, consent-checks and stores a single event, then enqueues
// it for aggregation. The stored record (with generated fields filled in) is
// returned.
func (es *EventsService) AddEvent(event model.Event, queue EventQueue) (*model.Event, error) {

	logger := log.GetLogger()

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.EventTimestamp == 0 {
		event.EventTimestamp = time.Now().UTC().Unix()
	}
	event.EventType = strings.ToLower(event.EventType)
	event.EventCategory = strings.ToLower(event.EventCategory)

	if err := es.validateEvent(event); err != nil {
		logger.Debug(fmt.Sprintf("failed to validate event with id: %s", event.EventID), log.Error(err))
		return nil, err
	}

	consentStatus, err := es.resolveConsentStatus(event)
	if err != nil {
		return nil, err
	}
	event.ConsentStatus = consentStatus
	if consentStatus == constants.ConsentDenied {
		return nil, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.CONSENT_DENIED.Code,
			Message:     apierrors.CONSENT_DENIED.Message,
			Description: fmt.Sprintf("Subject %s has declined analytics collection.", event.UserID),
		}, http.StatusForbidden)
	}

	event.Status = constants.EventStatusActive
	event.Anonymized = false
	event.RetentionExpiry = retentionExpiryFor(event.EventTimestamp)

	if err := store.UpsertEvent(event); err != nil {
		logger.Debug(fmt.Sprintf("failed to persist event with id: %s", event.EventID), log.Error(err))
		return nil, err
	}

	if queue != nil {
		queue.Enqueue(event)
	}

	return &event, nil
}

// AddEvents ingests a batch and reports the count actually persisted along
// with the ids that were refused.
func (es *EventsService) AddEvents(events []model.Event, queue EventQueue) (*model.BatchResult, error) {

	if len(events) == 0 {
		return nil, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_REQUEST.Code,
			Message:     apierrors.INVALID_REQUEST.Message,
			Description: "Batch must contain at least one event.",
		}, http.StatusBadRequest)
	}

	result := &model.BatchResult{}
	for _, event := range events {
		if _, err := es.AddEvent(event, queue); err != nil {
			failedID := event.EventID
			if failedID == "" {
				failedID = "(missing id)"
			}
			result.FailedIDs = append(result.FailedIDs, failedID)
			continue
		}
		result.ProcessedCount++
	}
	return result, nil
}

// validateEvent validates the event before storing it.
func (es *EventsService) validateEvent(event model.Event) error {

	if event.SessionID == "" {
		return invalidEventError("Session id is required.")
	}
	if event.EventType == "" {
		return invalidEventError("Event type is required.")
	}
	if !constants.AllowedEventTypes[event.EventType] {
		return invalidEventError(fmt.Sprintf("'%s' is not an expected event type.", event.EventType))
	}
	if event.EventTimestamp > time.Now().UTC().Unix() {
		return invalidEventError("Event can not happen in the future. We only accept timestamps in UTC.")
	}
	return nil
}

// resolveConsentStatus consults the subject's consent record. Events without
// a user id carry no personal association and are accepted as granted.
func (es *EventsService) resolveConsentStatus(event model.Event) (string, error) {

	if event.UserID == "" {
		return constants.ConsentGranted, nil
	}

	consentService := consentprovider.NewConsentProvider().GetConsentService()
	record, err := consentService.GetConsent(event.UserID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return constants.ConsentUnknown, nil
	}
	if !record.CollectionGranted {
		return constants.ConsentDenied, nil
	}
	return constants.ConsentGranted, nil
}

// GetEvents retrieves a page of events with filters, along with the total
// matching count.
func (es *EventsService) GetEvents(filters []string, sinceTimestamp int64, limit, offset int) ([]model.Event, int64, error) {

	return store.FindEvents(filters, sinceTimestamp, limit, offset)
}

func (es *EventsService) GetEvent(eventID string) (*model.Event, error) {

	event, err := store.FindEvent(eventID)
	if err != nil {
		log.GetLogger().Debug(fmt.Sprintf("Failed to fetch event with id: %s", eventID), log.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, eventNotFoundError(eventID)
	}
	return event, nil
}

func (es *EventsService) DeleteEvent(eventID string) error {

	deleted, err := store.DeleteEvent(eventID)
	if err != nil {
		return err
	}
	if !deleted {
		return eventNotFoundError(eventID)
	}
	return nil
}

func (es *EventsService) AnonymizeEvent(eventID string) error {

	anonymized, err := store.AnonymizeEvent(eventID)
	if err != nil {
		return err
	}
	if !anonymized {
		return eventNotFoundError(eventID)
	}
	return nil
}

// retentionExpiryFor computes the retention deadline from the configured
// retention window. A zero or negative window disables expiry.
func retentionExpiryFor(eventTimestamp int64) int64 {

	periodDays := config.GetRDSRuntime().Config.Retention.PeriodDays
	if periodDays <= 0 {
		return 0
	}
	return eventTimestamp + int64(periodDays)*24*3600
}

func invalidEventError(description string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_EVENT.Code,
		Message:     apierrors.INVALID_EVENT.Message,
		Description: description,
	}, http.StatusBadRequest)
}

func eventNotFoundError(eventID string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.EVENT_NOT_FOUND.Code,
		Message:     apierrors.EVENT_NOT_FOUND.Message,
		Description: fmt.Sprintf("Event with ID %s not found", eventID),
	}, http.StatusNotFound)
}
