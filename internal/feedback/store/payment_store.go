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

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/hirewise/recruiting-data-service/internal/feedback/model"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/database/provider"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

const paymentColumns = "payment_id, feedback_code, payout_account, amount, quality_score, " +
	"payment_status, created_at, answers"

// AddPayment inserts a payment record.
func AddPayment(payment model.Payment) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding payment with id: %s",
			payment.PaymentID)
		logger.Debug(errorMsg, log.Error(err))
		return apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.IMPORT_FEEDBACK.Code,
			Message:     apierrors.IMPORT_FEEDBACK.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	answersJSON, err := marshalAnswers(payment.Answers)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (payment_id, feedback_code, payout_account, amount, quality_score,
                        payment_status, created_at, answers)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, constants.FeedbackPaymentTable)

	_, err = dbClient.Exec(query,
		payment.PaymentID, payment.FeedbackCode, payment.PayoutAccount, payment.Amount,
		payment.QualityScore, payment.PaymentStatus, payment.CreatedAt, answersJSON,
	)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in adding payment with id: %s", payment.PaymentID)
		logger.Debug(errorMsg, log.Error(err))
		return apierrors.NewServerError(apierrors.ErrorMessage{
			Code:        apierrors.IMPORT_FEEDBACK.Code,
			Message:     apierrors.IMPORT_FEEDBACK.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// FindPayments lists payment records, optionally filtered by status.
func FindPayments(status string, limit, offset int) ([]model.Payment, int64, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, 0, apierrors.NewServerError(apierrors.FETCH_PAYMENTS, err)
	}
	defer dbClient.Close()

	whereClause := ""
	args := make([]interface{}, 0, 3)
	if status != "" {
		whereClause = " WHERE payment_status = $1"
		args = append(args, status)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) AS total FROM %s%s",
		constants.FeedbackPaymentTable, whereClause)
	countRows, err := dbClient.ExecuteQuery(countQuery, args...)
	if err != nil {
		return nil, 0, apierrors.NewServerError(apierrors.FETCH_PAYMENTS, err)
	}
	total := scanCount(countRows)

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		paymentColumns, constants.FeedbackPaymentTable, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		return nil, 0, apierrors.NewServerError(apierrors.FETCH_PAYMENTS, err)
	}

	payments := make([]model.Payment, 0, len(results))
	for _, row := range results {
		payment, err := scanPaymentRow(row)
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, payment)
	}
	return payments, total, nil
}

// scanCount reads the total from a single-row COUNT result.
func scanCount(rows []map[string]interface{}) int64 {

	if len(rows) == 0 {
		return 0
	}
	switch v := rows[0]["total"].(type) {
	case int64:
		return v
	case []byte:
		var total int64
		fmt.Sscanf(string(v), "%d", &total)
		return total
	default:
		return 0
	}
}

// FindPayment fetches one payment record by id. Returns nil when absent.
func FindPayment(paymentID string) (*model.Payment, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.FETCH_PAYMENTS, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE payment_id = $1",
		paymentColumns, constants.FeedbackPaymentTable)

	results, err := dbClient.ExecuteQuery(query, paymentID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.FETCH_PAYMENTS, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	payment, err := scanPaymentRow(results[0])
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdatePaymentStatus flips the status of a payment record.
func UpdatePaymentStatus(paymentID, status string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return false, apierrors.NewServerError(apierrors.FETCH_PAYMENTS, err)
	}
	defer dbClient.Close()

	query := fmt.Sprintf("UPDATE %s SET payment_status = $1 WHERE payment_id = $2",
		constants.FeedbackPaymentTable)

	rows, err := dbClient.Exec(query, status, paymentID)
	if err != nil {
		return false, apierrors.NewServerError(apierrors.FETCH_PAYMENTS, err)
	}
	return rows > 0, nil
}

func marshalAnswers(answers map[string]interface{}) (sql.NullString, error) {
	if answers == nil {
		return sql.NullString{Valid: false}, nil
	}
	bytes, err := json.Marshal(answers)
	if err != nil {
		return sql.NullString{}, apierrors.NewServerError(apierrors.MARSHAL_JSON, err)
	}
	return sql.NullString{String: string(bytes), Valid: true}, nil
}

func scanPaymentRow(row map[string]interface{}) (model.Payment, error) {

	payment := model.Payment{}

	if paymentID, ok := row["payment_id"].(string); ok {
		payment.PaymentID = paymentID
	}
	if feedbackCode, ok := row["feedback_code"].(string); ok {
		payment.FeedbackCode = feedbackCode
	}
	if payoutAccount, ok := row["payout_account"].(string); ok {
		payment.PayoutAccount = payoutAccount
	}
	switch amount := row["amount"].(type) {
	case float64:
		payment.Amount = amount
	case []byte:
		// lib/pq returns NUMERIC columns as raw bytes.
		if _, err := fmt.Sscanf(string(amount), "%f", &payment.Amount); err != nil {
			return model.Payment{}, apierrors.NewServerError(apierrors.INVALID_TYPE, err)
		}
	}
	if qualityScore, ok := row["quality_score"].(int64); ok {
		payment.QualityScore = int(qualityScore)
	}
	if status, ok := row["payment_status"].(string); ok {
		payment.PaymentStatus = status
	}
	if createdAt, ok := row["created_at"].(int64); ok {
		payment.CreatedAt = createdAt
	}
	switch answers := row["answers"].(type) {
	case []byte:
		if err := json.Unmarshal(answers, &payment.Answers); err != nil {
			return model.Payment{}, apierrors.NewServerError(apierrors.INVALID_TYPE, err)
		}
	case string:
		if answers != "" {
			if err := json.Unmarshal([]byte(answers), &payment.Answers); err != nil {
				return model.Payment{}, apierrors.NewServerError(apierrors.INVALID_TYPE, err)
			}
		}
	}
	return payment, nil
}
