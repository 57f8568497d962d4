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

// Consent represents a subject's consent record for analytics collection.
type Consent struct {
	SubjectID         string   `json:"subject_id" bson:"subject_id"`
	CollectionGranted bool     `json:"collection_granted" bson:"collection_granted"`
	SharingGranted    bool     `json:"sharing_granted" bson:"sharing_granted"`
	Categories        []string `json:"categories,omitempty" bson:"categories,omitempty"`
	UpdatedAt         int64    `json:"updated_at" bson:"updated_at"`
}
