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

// Payment is a questionnaire feedback payout record.
type Payment struct {
	PaymentID     string                 `json:"payment_id"`
	FeedbackCode  string                 `json:"feedback_code"`
	PayoutAccount string                 `json:"payout_account"`
	Amount        float64                `json:"amount"`
	QualityScore  int                    `json:"quality_score"`
	PaymentStatus string                 `json:"payment_status"`
	CreatedAt     int64                  `json:"created_at"`
	Answers       map[string]interface{} `json:"answers,omitempty"`
}

// ImportResult summarizes a questionnaire workbook import.
type ImportResult struct {
	TotalRows      int       `json:"total_rows"`
	QualifiedCount int       `json:"qualified_count"`
	Payments       []Payment `json:"payments"`
}
