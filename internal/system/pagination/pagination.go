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
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultLimit = 25
	maxLimit     = 200
)

// Page holds the parsed limit/offset of a list request.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads limit and offset query parameters, applying the default
// and cap when absent or oversized.
func ParsePage(r *http.Request) (Page, error) {
	page := Page{Limit: defaultLimit}

	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			return Page{}, fmt.Errorf("invalid limit")
		}
		if v > maxLimit {
			v = maxLimit
		}
		page.Limit = v
	}

	if o := r.URL.Query().Get("offset"); o != "" {
		v, err := strconv.Atoi(o)
		if err != nil || v < 0 {
			return Page{}, fmt.Errorf("invalid offset")
		}
		page.Offset = v
	}

	return page, nil
}

// ListResponse wraps a page of results with its total count.
type ListResponse struct {
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
	Items      interface{} `json:"items"`
}
