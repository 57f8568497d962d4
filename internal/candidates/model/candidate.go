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

// Candidate is a browsable candidate profile with its review score.
type Candidate struct {
	CandidateID     string   `json:"candidate_id" bson:"candidate_id"`
	FullName        string   `json:"full_name" bson:"full_name"`
	Email           string   `json:"email" bson:"email"`
	Headline        string   `json:"headline,omitempty" bson:"headline,omitempty"`
	Skills          []string `json:"skills,omitempty" bson:"skills,omitempty"`
	ExperienceYears float64  `json:"experience_years" bson:"experience_years"`
	Score           float64  `json:"score" bson:"score"`
	Status          string   `json:"status" bson:"status"`
	UpdatedAt       int64    `json:"updated_at" bson:"updated_at"`
}

// CandidateQuery holds the parsed browsing parameters.
type CandidateQuery struct {
	Status   string
	Skill    string
	MinScore float64
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}
