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
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/database/provider"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

// Whitelist of fields a filter expression may reference.
var filterableFields = map[string]bool{
	"session_id":     true,
	"user_id":        true,
	"event_type":     true,
	"event_category": true,
	"status":         true,
	"consent_status": true,
}

const eventColumns = "event_id, session_id, user_id, event_type, event_category, status, payload, " +
	"event_timestamp, consent_status, retention_expiry, anonymized"

// marshalJSONB marshals a payload map for a JSONB column, keeping nil maps as SQL NULL.
func marshalJSONB(data map[string]interface{}) (sql.NullString, error) {
	if data == nil {
		return sql.NullString{Valid: false}, nil
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		errorMsg := "Failed to marshal event payload to JSON for storing in database."
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return sql.NullString{}, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.MARSHAL_JSON.Code,
			Message:     apierrors.MARSHAL_JSON.Message,
			Description: errorMsg,
		}, err)
	}
	return sql.NullString{String: string(bytes), Valid: true}, nil
}

// UpsertEvent inserts an event, replacing the stored record when the event id
// already exists.
func UpsertEvent(event model.Event) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding event with id: %s", event.EventID)
		logger.Debug(errorMsg, log.Error(err))
		return apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.ADD_EVENT.Code,
			Message:     apierrors.ADD_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	payloadJSON, err := marshalJSONB(event.Payload)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (event_id, session_id, user_id, event_type, event_category, status, payload,
                        event_timestamp, consent_status, retention_expiry, anonymized)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (event_id) DO UPDATE SET
            session_id = EXCLUDED.session_id,
            user_id = EXCLUDED.user_id,
            event_type = EXCLUDED.event_type,
            event_category = EXCLUDED.event_category,
            status = EXCLUDED.status,
            payload = EXCLUDED.payload,
            event_timestamp = EXCLUDED.event_timestamp,
            consent_status = EXCLUDED.consent_status,
            retention_expiry = EXCLUDED.retention_expiry,
            anonymized = EXCLUDED.anonymized`, constants.EventTable)

	_, err = dbClient.Exec(query,
		event.EventID, event.SessionID, event.UserID, event.EventType, event.EventCategory,
		event.Status, payloadJSON, event.EventTimestamp, event.ConsentStatus,
		event.RetentionExpiry, event.Anonymized,
	)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in adding event with id: %s", event.EventID)
		logger.Debug(errorMsg, log.Error(err))
		return apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.ADD_EVENT.Code,
			Message:     apierrors.ADD_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Debug(fmt.Sprintf("Event with event id: %s persisted successfully", event.EventID))
	return nil
}

// buildEventFilterClause turns field:value filters and the timestamp lower
// bound into a WHERE clause shared by the list and count queries.
func buildEventFilterClause(filters []string, sinceTimestamp int64) (string, []interface{}, error) {

	var clause strings.Builder
	clause.WriteString(" WHERE 1=1")

	var args []interface{}
	argCount := 1

	for _, rawFilter := range filters {
		parts := strings.SplitN(rawFilter, ":", 2)
		if len(parts) != 2 {
			return "", nil, invalidFilterError(rawFilter)
		}
		field, value := parts[0], parts[1]
		if !filterableFields[field] {
			return "", nil, invalidFilterError(rawFilter)
		}
		clause.WriteString(fmt.Sprintf(" AND %s = $%d", field, argCount))
		args = append(args, value)
		argCount++
	}

	if sinceTimestamp > 0 {
		clause.WriteString(fmt.Sprintf(" AND event_timestamp >= $%d", argCount))
		args = append(args, sinceTimestamp)
	}

	return clause.String(), args, nil
}

// FindEvents fetches a page of events matching the field filters and the
// optional timestamp lower bound, along with the full matching count.
func FindEvents(filters []string, sinceTimestamp int64, limit, offset int) ([]model.Event, int64, error) {

	logger := log.GetLogger()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, 0, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.FETCH_EVENTS.Code,
			Message:     apierrors.FETCH_EVENTS.Message,
			Description: "Failed to get database client for fetching events",
		}, err)
	}
	defer dbClient.Close()

	whereClause, args, err := buildEventFilterClause(filters, sinceTimestamp)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) AS total FROM %s%s", constants.EventTable, whereClause)
	countRows, err := dbClient.ExecuteQuery(countQuery, args...)
	if err != nil {
		errorMsg := "Failed to count events in database"
		logger.Debug(errorMsg, log.Error(err))
		return nil, 0, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.FETCH_EVENTS.Code,
			Message:     apierrors.FETCH_EVENTS.Message,
			Description: errorMsg,
		}, err)
	}
	total := scanCount(countRows)

	argCount := len(args) + 1
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY event_timestamp DESC LIMIT $%d OFFSET $%d",
		eventColumns, constants.EventTable, whereClause, argCount, argCount+1)
	args = append(args, limit, offset)

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to fetch events from database"
		logger.Debug(errorMsg, log.Error(err))
		return nil, 0, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.FETCH_EVENTS.Code,
			Message:     apierrors.FETCH_EVENTS.Message,
			Description: errorMsg,
		}, err)
	}

	events := make([]model.Event, 0, len(results))
	for _, row := range results {
		event, err := scanEventRow(row)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	return events, total, nil
}

// scanCount reads the total from a single-row COUNT result.
func scanCount(rows []map[string]interface{}) int64 {

	if len(rows) == 0 {
		return 0
	}
	switch v := rows[0]["total"].(type) {
	case int64:
		return v
	case []byte:
		var total int64
		fmt.Sscanf(string(v), "%d", &total)
		return total
	default:
		return 0
	}
}

// FindEvent fetches a single event by its id. Returns nil when absent.
func FindEvent(eventID string) (*model.Event, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.FETCH_EVENTS.Code,
			Message:     apierrors.FETCH_EVENTS.Message,
			Description: fmt.Sprintf("Failed to get database client for fetching event with id: %s", eventID),
		}, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE event_id = $1", eventColumns, constants.EventTable)
	results, err := dbClient.ExecuteQuery(query, eventID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch event with id: %s", eventID)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.FETCH_EVENTS.Code,
			Message:     apierrors.FETCH_EVENTS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	event, err := scanEventRow(results[0])
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent deletes a single event by its id. Returns false when no row matched.
func DeleteEvent(eventID string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return false, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.DELETE_EVENT.Code,
			Message:     apierrors.DELETE_EVENT.Message,
			Description: fmt.Sprintf("Failed to get database client for deleting event with id: %s", eventID),
		}, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf("DELETE FROM %s WHERE event_id = $1", constants.EventTable)
	affected, err := dbClient.Exec(query, eventID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete event with id: %s", eventID)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return false, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.DELETE_EVENT.Code,
			Message:     apierrors.DELETE_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return affected > 0, nil
}

// AnonymizeEvent strips the subject identifiers from an event and marks it
// anonymized. Returns false when no row matched.
func AnonymizeEvent(eventID string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return false, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.ANONYMIZE_EVENT.Code,
			Message:     apierrors.ANONYMIZE_EVENT.Message,
			Description: fmt.Sprintf("Failed to get database client for anonymizing event with id: %s", eventID),
		}, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf(`
        UPDATE %s SET user_id = '', session_id = '', anonymized = TRUE,
               status = CASE WHEN status = $2 THEN $3 ELSE status END
        WHERE event_id = $1`, constants.EventTable)

	affected, err := dbClient.Exec(query, eventID,
		constants.EventStatusActive, constants.EventStatusAnonymized)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to anonymize event with id: %s", eventID)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return false, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.ANONYMIZE_EVENT.Code,
			Message:     apierrors.ANONYMIZE_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return affected > 0, nil
}

// ExpireEvents flips events past their retention expiry to the expired status
// and anonymizes their subject identifiers. Returns the number of flipped rows.
func ExpireEvents(now int64) (int64, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return 0, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.RETENTION_SWEEP.Code,
			Message:     apierrors.RETENTION_SWEEP.Message,
			Description: "Failed to get database client for expiring events",
		}, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf(`
        UPDATE %s SET status = $1, user_id = '', session_id = '', anonymized = TRUE
        WHERE retention_expiry > 0 AND retention_expiry <= $2 AND status = $3`, constants.EventTable)

	affected, err := dbClient.Exec(query, constants.EventStatusExpired, now, constants.EventStatusActive)
	if err != nil {
		errorMsg := "Failed to expire events past retention"
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return 0, apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.RETENTION_SWEEP.Code,
			Message:     apierrors.RETENTION_SWEEP.Message,
			Description: errorMsg,
		}, err)
	}
	return affected, nil
}

// scanEventRow converts a result row into an event model.
func scanEventRow(row map[string]interface{}) (model.Event, error) {

	var event model.Event
	event.EventID, _ = row["event_id"].(string)
	event.SessionID, _ = row["session_id"].(string)
	event.UserID, _ = row["user_id"].(string)
	event.EventType, _ = row["event_type"].(string)
	event.EventCategory, _ = row["event_category"].(string)
	event.Status, _ = row["status"].(string)
	event.ConsentStatus, _ = row["consent_status"].(string)
	if ts, ok := row["event_timestamp"].(int64); ok {
		event.EventTimestamp = ts
	}
	if exp, ok := row["retention_expiry"].(int64); ok {
		event.RetentionExpiry = exp
	}
	if anon, ok := row["anonymized"].(bool); ok {
		event.Anonymized = anon
	}

	if raw, ok := row["payload"].([]byte); ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &event.Payload); err != nil {
			errorMsg := fmt.Sprintf("Failed to unmarshal payload for event with id: %s", event.EventID)
			log.GetLogger().Debug(errorMsg, log.Error(err))
			return model.Event{}, apierrors.NewServerError(apierrors.ErrorMessage{
				Code:        apierrors.FETCH_EVENTS.Code,
				Message:     apierrors.FETCH_EVENTS.Message,
				Description: errorMsg,
			}, err)
		}
	}
	return event, nil
}

func invalidFilterError(rawFilter string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_FILTER.Code,
		Message:     apierrors.INVALID_FILTER.Message,
		Description: fmt.Sprintf("Filter %q is not of the form field:value on a filterable field.", rawFilter),
	}, http.StatusBadRequest)
}
