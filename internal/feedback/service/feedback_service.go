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
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hirewise/recruiting-data-service/internal/feedback/model"
	"github.com/hirewise/recruiting-data-service/internal/feedback/store"
	"github.com/hirewise/recruiting-data-service/internal/system/config"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

// Questionnaire export column layout.
const (
	feedbackCodeColumn  = 1
	payoutAccountColumn = 2
	firstAnswerColumn   = 4
	lastAnswerColumn    = 7
)

const (
	maxQualityScore        = 5
	defaultMinQualityScore = 3
	defaultPaymentAmount   = 3.00
	substantiveAnswerLen   = 10
)

// constructiveKeywords marks answers that carry an actionable suggestion.
var constructiveKeywords = []string{
	"suggest", "hope", "should", "could", "improve", "optimize",
}

type FeedbackServiceInterface interface {
	ImportQuestionnaire(workbook io.Reader) (*model.ImportResult, error)
	GetPayments(status string, limit, offset int) ([]model.Payment, int64, error)
	GetPayment(paymentID string) (*model.Payment, error)
	UpdatePaymentStatus(paymentID, status string) (*model.Payment, error)
}

// FeedbackService is the default implementation of the FeedbackServiceInterface.
type FeedbackService struct{}

// GetFeedbackService creates a new instance of FeedbackService.
func GetFeedbackService() FeedbackServiceInterface {

	return &FeedbackService{}
}

// ImportQuestionnaire reads a questionnaire export workbook, scores each
// response and creates pending payment records for responses meeting the
// quality bar.
func (fs *FeedbackService) ImportQuestionnaire(workbook io.Reader) (*model.ImportResult, error) {

	logger := log.GetLogger()

	file, err := excelize.OpenReader(workbook)
	if err != nil {
		return nil, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_WORKBOOK.Code,
			Message:     apierrors.INVALID_WORKBOOK.Message,
			Description: "File is not a readable Excel workbook.",
		}, http.StatusBadRequest)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.IMPORT_FEEDBACK, err)
	}
	if len(rows) < 2 {
		return nil, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_WORKBOOK.Code,
			Message:     apierrors.INVALID_WORKBOOK.Message,
			Description: "Workbook contains no response rows.",
		}, http.StatusBadRequest)
	}

	feedbackConfig := config.GetRDSRuntime().Config.Feedback
	minScore := feedbackConfig.MinQualityScore
	if minScore <= 0 {
		minScore = defaultMinQualityScore
	}
	amount := feedbackConfig.PaymentAmount
	if amount <= 0 {
		amount = defaultPaymentAmount
	}

	header := rows[0]
	result := &model.ImportResult{Payments: []model.Payment{}}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		result.TotalRows++

		// A response without a feedback code cannot be paid out.
		if cellAt(row, feedbackCodeColumn) == "" {
			continue
		}

		score := assessFeedbackQuality(row)
		if score < minScore {
			continue
		}

		payment := model.Payment{
			PaymentID:     uuid.NewString(),
			FeedbackCode:  cellAt(row, feedbackCodeColumn),
			PayoutAccount: cellAt(row, payoutAccountColumn),
			Amount:        amount,
			QualityScore:  score,
			PaymentStatus: constants.PaymentStatusPending,
			CreatedAt:     time.Now().UTC().Unix(),
			Answers:       answersFor(header, row),
		}

		if err := store.AddPayment(payment); err != nil {
			return nil, err
		}
		result.QualifiedCount++
		result.Payments = append(result.Payments, payment)
	}

	logger.Info("Imported questionnaire feedback",
		log.Int("totalRows", result.TotalRows),
		log.Int("qualified", result.QualifiedCount))
	return result, nil
}

// GetPayments lists payment records, optionally filtered by status.
// The second return value is the full matching count.
func (fs *FeedbackService) GetPayments(status string, limit, offset int) ([]model.Payment, int64, error) {

	switch status {
	case "", constants.PaymentStatusPending, constants.PaymentStatusPaid,
		constants.PaymentStatusRejected:
	default:
		return nil, 0, invalidStatusError(status)
	}

	return store.FindPayments(status, limit, offset)
}

// GetPayment fetches a single payment record.
func (fs *FeedbackService) GetPayment(paymentID string) (*model.Payment, error) {

	payment, err := store.FindPayment(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, paymentNotFoundError(paymentID)
	}
	return payment, nil
}

// UpdatePaymentStatus marks a payment as paid or rejected.
func (fs *FeedbackService) UpdatePaymentStatus(paymentID, status string) (*model.Payment, error) {

	if status != constants.PaymentStatusPaid && status != constants.PaymentStatusRejected {
		return nil, invalidStatusError(status)
	}

	updated, err := store.UpdatePaymentStatus(paymentID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, paymentNotFoundError(paymentID)
	}
	return store.FindPayment(paymentID)
}

// assessFeedbackQuality scores a response row. Every response starts with one
// point, each substantive free-text answer adds one, and any constructive
// keyword adds one more, capped at the maximum.
func assessFeedbackQuality(row []string) int {

	score := 1

	var combined strings.Builder
	for col := firstAnswerColumn; col <= lastAnswerColumn; col++ {
		answer := strings.TrimSpace(cellAt(row, col))
		if utf8.RuneCountInString(answer) > substantiveAnswerLen {
			score++
		}
		combined.WriteString(strings.ToLower(answer))
		combined.WriteByte(' ')
	}

	fullText := combined.String()
	for _, keyword := range constructiveKeywords {
		if strings.Contains(fullText, keyword) {
			score++
			break
		}
	}

	if score > maxQualityScore {
		return maxQualityScore
	}
	return score
}

// answersFor maps the free-text answer cells to their header labels.
func answersFor(header, row []string) map[string]interface{} {

	answers := make(map[string]interface{})
	for col := firstAnswerColumn; col <= lastAnswerColumn; col++ {
		label := cellAt(header, col)
		if label == "" {
			label = fmt.Sprintf("answer_%d", col-firstAnswerColumn+1)
		}
		answers[label] = cellAt(row, col)
	}
	return answers
}

func cellAt(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func invalidStatusError(status string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_REQUEST.Code,
		Message:     apierrors.INVALID_REQUEST.Message,
		Description: fmt.Sprintf("Unknown payment status %q.", status),
	}, http.StatusBadRequest)
}

func paymentNotFoundError(paymentID string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.PAYMENT_NOT_FOUND.Code,
		Message:     apierrors.PAYMENT_NOT_FOUND.Message,
		Description: fmt.Sprintf("No payment found with id %s", paymentID),
	}, http.StatusNotFound)
}
