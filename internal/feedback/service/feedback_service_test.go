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

	"github.com/stretchr/testify/assert"
)

// row layout: 0 timestamp, 1 feedback code, 2 payout account, 3 rating,
// 4..7 free-text answers.
func questionnaireRow(answers ...string) []string {
	row := []string{"2025-06-01 10:00", "FB-001", "payout@example.com", "4"}
	return append(row, answers...)
}

func TestAssessFeedbackQuality(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want int
	}{
		{
			name: "empty answers only earn the base point",
			row:  questionnaireRow("", "", "", ""),
			want: 1,
		},
		{
			name: "short answers do not count as substantive",
			row:  questionnaireRow("ok", "fine", "yes", "no"),
			want: 1,
		},
		{
			name: "one substantive answer",
			row:  questionnaireRow("the dashboard loads slowly on my phone", "", "", ""),
			want: 2,
		},
		{
			name: "substantive answer with constructive keyword",
			row:  questionnaireRow("you should improve the upload flow", "", "", ""),
			want: 3,
		},
		{
			name: "score is capped at five",
			row: questionnaireRow(
				"I suggest reworking the swipe actions entirely",
				"the candidate filters could use more options",
				"resume upload errors are hard to understand",
				"search results should remember my sort order",
			),
			want: 5,
		},
		{
			name: "keyword alone without substance",
			row:  questionnaireRow("improve", "", "", ""),
			want: 2,
		},
		{
			name: "substance is measured in characters not bytes",
			row:  questionnaireRow("好的不错满意", "", "", ""),
			want: 1,
		},
		{
			name: "eleven multibyte characters are substantive",
			row:  questionnaireRow("这个平台的简历上传很好用啊", "", "", ""),
			want: 2,
		},
		{
			name: "row shorter than the answer columns",
			row:  []string{"2025-06-01", "FB-002"},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assessFeedbackQuality(tt.row))
		})
	}
}

func TestAnswersForUsesHeaderLabels(t *testing.T) {
	header := []string{"Submitted", "Code", "Account", "Rating",
		"What did you like?", "What was confusing?", "", "Anything else?"}
	row := questionnaireRow("the swipe UI", "nothing", "", "keep it up")

	answers := answersFor(header, row)

	assert.Equal(t, "the swipe UI", answers["What did you like?"])
	assert.Equal(t, "nothing", answers["What was confusing?"])
	assert.Equal(t, "", answers["answer_3"], "unlabeled columns fall back to positional keys")
	assert.Equal(t, "keep it up", answers["Anything else?"])
}

func TestCellAtOutOfRange(t *testing.T) {
	assert.Equal(t, "", cellAt([]string{"a"}, 5))
	assert.Equal(t, "trimmed", cellAt([]string{"  trimmed  "}, 0))
}

func TestIsBlankRow(t *testing.T) {
	assert.True(t, isBlankRow([]string{"", "  ", "\t"}))
	assert.False(t, isBlankRow([]string{"", "FB-003"}))
}
