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

// Resume is the stored representation of an uploaded resume document and its
// processing state.
type Resume struct {
	ResumeID      string `json:"resume_id" bson:"resume_id"`
	CandidateID   string `json:"candidate_id" bson:"candidate_id"`
	FileName      string `json:"file_name" bson:"file_name"`
	ContentType   string `json:"content_type" bson:"content_type"`
	SizeBytes     int64  `json:"size_bytes" bson:"size_bytes"`
	Status        string `json:"status" bson:"status"`
	Content       []byte `json:"-" bson:"content,omitempty"`
	ExtractedText string `json:"extracted_text,omitempty" bson:"extracted_text,omitempty"`
	FailureReason string `json:"failure_reason,omitempty" bson:"failure_reason,omitempty"`
	UploadedAt    int64  `json:"uploaded_at" bson:"uploaded_at"`
	ProcessedAt   int64  `json:"processed_at,omitempty" bson:"processed_at,omitempty"`
}
