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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/recruiting-data-service/internal/analytics/model"
	"github.com/hirewise/recruiting-data-service/internal/system/config"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
)

func TestValidateEvent(t *testing.T) {
	es := &EventsService{}
	now := time.Now().UTC().Unix()

	tests := []struct {
		name    string
		event   model.Event
		wantErr bool
	}{
		{
			name:  "valid event",
			event: model.Event{SessionID: "s-1", EventType: "page_view", EventTimestamp: now},
		},
		{
			name:    "missing session id",
			event:   model.Event{EventType: "page_view", EventTimestamp: now},
			wantErr: true,
		},
		{
			name:    "missing event type",
			event:   model.Event{SessionID: "s-1", EventTimestamp: now},
			wantErr: true,
		},
		{
			name:    "unknown event type",
			event:   model.Event{SessionID: "s-1", EventType: "telemetry", EventTimestamp: now},
			wantErr: true,
		},
		{
			name:    "future timestamp",
			event:   model.Event{SessionID: "s-1", EventType: "swipe", EventTimestamp: now + 600},
			wantErr: true,
		},
		{
			name:  "swipe event",
			event: model.Event{SessionID: "s-1", EventType: "swipe", EventTimestamp: now - 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := es.validateEvent(tt.event)
			if tt.wantErr {
				require.Error(t, err)
				var clientErr *apierrors.ClientError
				require.ErrorAs(t, err, &clientErr)
				assert.Equal(t, apierrors.INVALID_EVENT.Code, clientErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetentionExpiryFor(t *testing.T) {
	config.OverrideRDSRuntime(config.Config{
		Retention: config.RetentionConfig{PeriodDays: 90},
	})

	eventTime := int64(1_700_000_000)
	assert.Equal(t, eventTime+90*24*3600, retentionExpiryFor(eventTime))
}

func TestRetentionExpiryDisabledWithoutPeriod(t *testing.T) {
	config.OverrideRDSRuntime(config.Config{})

	assert.Equal(t, int64(0), retentionExpiryFor(1_700_000_000))
}
