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

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    Page
		wantErr bool
	}{
		{name: "defaults", url: "/events", want: Page{Limit: 25}},
		{name: "explicit values", url: "/events?limit=50&offset=100", want: Page{Limit: 50, Offset: 100}},
		{name: "limit capped", url: "/events?limit=1000", want: Page{Limit: 200}},
		{name: "zero limit rejected", url: "/events?limit=0", wantErr: true},
		{name: "negative offset rejected", url: "/events?offset=-1", wantErr: true},
		{name: "non-numeric limit rejected", url: "/events?limit=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			page, err := ParsePage(r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}
