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

package errors

const errorPrefix = "RDS-"

var (
	// Server error codes

	ADD_EVENT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while persisting analytics event.",
	}

	FETCH_EVENTS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching analytics event(s).",
	}

	DELETE_EVENT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while deleting analytics event.",
	}

	ANONYMIZE_EVENT = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while anonymizing analytics event.",
	}

	UPDATE_ROLLUP = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while updating dashboard rollups.",
	}

	FETCH_DASHBOARD = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while building the analytics dashboard.",
	}

	STORE_RESUME = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while storing resume document.",
	}

	FETCH_RESUMES = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching resume document(s).",
	}

	DELETE_RESUME = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while deleting resume document.",
	}

	FETCH_CANDIDATES = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while fetching candidate(s).",
	}

	STORE_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while storing consent record.",
	}

	FETCH_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while fetching consent record.",
	}

	IMPORT_FEEDBACK = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while importing questionnaire feedback.",
	}

	FETCH_PAYMENTS = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while fetching feedback payment(s).",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Unable to initialize database client.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while serializing data for storage.",
	}

	INVALID_TYPE = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Unexpected value type.",
	}

	RETENTION_SWEEP = ErrorMessage{
		Code:    errorPrefix + "15018",
		Message: "Error while sweeping expired analytics events.",
	}

	PROCESS_RESUME = ErrorMessage{
		Code:    errorPrefix + "15019",
		Message: "Error while processing resume document.",
	}

	// Client error codes

	INVALID_EVENT = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid analytics event.",
	}

	EVENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Analytics event not found.",
	}

	CONSENT_DENIED = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Event collection not permitted for this subject.",
	}

	INVALID_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Invalid request.",
	}

	INVALID_UPLOAD = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Invalid resume upload.",
	}

	RESUME_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Resume document not found.",
	}

	CANDIDATE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Candidate not found.",
	}

	CONSENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Consent record not found.",
	}

	INVALID_FILTER = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Invalid filter expression.",
	}

	INVALID_WORKBOOK = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Questionnaire workbook could not be read.",
	}

	PAYMENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11011",
		Message: "Feedback payment not found.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11401",
		Message:     "Unauthorized request.",
		Description: "The request is missing valid authentication credentials.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "11403",
		Message:     "Forbidden.",
		Description: "The authenticated principal is not allowed to perform this operation.",
	}
)
