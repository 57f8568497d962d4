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

package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hirewise/recruiting-data-service/internal/feedback/provider"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
)

// buildQuestionnaire writes an xlsx workbook with one row per entry. Each row
// follows the export layout: feedback code in column B, payout account in
// column C and the four answers in columns E through H.
func buildQuestionnaire(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	header := []string{"Submitted At", "Feedback Code", "Payout Account", "Role",
		"What went well?", "What could improve?", "How was the pacing?", "Other comments"}
	for col, label := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetCellValue(sheet, cell, label))
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			require.NoError(t, err)
			require.NoError(t, workbook.SetCellValue(sheet, cell, value))
		}
	}

	buffer, err := workbook.WriteToBuffer()
	require.NoError(t, err)
	return buffer
}

func TestImportQuestionnaire(t *testing.T) {

	feedbackService := provider.NewFeedbackProvider().GetFeedbackService()

	rows := [][]string{
		// Three substantive answers plus a constructive keyword: qualifies.
		{"2026-08-01", "FB-1001", "acct-77", "engineer",
			"The interviewers were well prepared and asked relevant questions.",
			"The feedback loop could improve, I waited two weeks for an answer.",
			"Pacing felt rushed in the system design round.",
			""},
		// Single short answer: score stays below the payout bar.
		{"2026-08-02", "FB-1002", "acct-12", "designer", "ok", "", "", ""},
		// Missing feedback code: counted but never paid.
		{"2026-08-03", "", "acct-99", "engineer",
			"A detailed answer that could otherwise have qualified for payment.",
			"It should improve in several areas that I described at length above.",
			"", ""},
	}

	result, err := feedbackService.ImportQuestionnaire(buildQuestionnaire(t, rows))
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.QualifiedCount)
	require.Len(t, result.Payments, 1)

	payment := result.Payments[0]
	assert.Equal(t, "FB-1001", payment.FeedbackCode)
	assert.Equal(t, "acct-77", payment.PayoutAccount)
	assert.Equal(t, "pending", payment.PaymentStatus)
	assert.InDelta(t, 3.00, payment.Amount, 0.001)
	assert.GreaterOrEqual(t, payment.QualityScore, 3)
	assert.NotZero(t, payment.CreatedAt)
}

func TestImportQuestionnaireRejectsEmptyWorkbook(t *testing.T) {

	feedbackService := provider.NewFeedbackProvider().GetFeedbackService()

	_, err := feedbackService.ImportQuestionnaire(buildQuestionnaire(t, nil))
	require.Error(t, err)
	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.INVALID_WORKBOOK.Code, clientErr.Code)

	_, err = feedbackService.ImportQuestionnaire(strings.NewReader("not an xlsx file"))
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.INVALID_WORKBOOK.Code, clientErr.Code)
}

func TestPaymentLifecycle(t *testing.T) {

	feedbackService := provider.NewFeedbackProvider().GetFeedbackService()

	rows := [][]string{
		{"2026-08-10", "FB-2001", "acct-31", "engineer",
			"The take home exercise mirrored the real work closely, which I appreciated.",
			"Communication could improve between the recruiting and engineering sides.",
			"The pacing of the onsite was comfortable and well organised.",
			""},
	}
	result, err := feedbackService.ImportQuestionnaire(buildQuestionnaire(t, rows))
	require.NoError(t, err)
	require.Len(t, result.Payments, 1)
	paymentID := result.Payments[0].PaymentID

	pending, total, err := feedbackService.GetPayments("pending", 25, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(1))
	found := false
	for _, payment := range pending {
		if payment.PaymentID == paymentID {
			found = true
		}
	}
	assert.True(t, found, "imported payment should be listed as pending")

	fetched, err := feedbackService.GetPayment(paymentID)
	require.NoError(t, err)
	assert.Equal(t, "FB-2001", fetched.FeedbackCode)
	assert.NotEmpty(t, fetched.Answers)

	updated, err := feedbackService.UpdatePaymentStatus(paymentID, "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.PaymentStatus)

	var clientErr *apierrors.ClientError
	_, err = feedbackService.UpdatePaymentStatus(paymentID, "refunded")
	require.ErrorAs(t, err, &clientErr)

	_, err = feedbackService.GetPayment("missing-payment")
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.PAYMENT_NOT_FOUND.Code, clientErr.Code)
}
