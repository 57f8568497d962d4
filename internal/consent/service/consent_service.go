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
	"net/http"
	"time"

	"github.com/hirewise/recruiting-data-service/internal/consent/model"
	"github.com/hirewise/recruiting-data-service/internal/consent/store"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
)

type ConsentServiceInterface interface {
	GetConsent(subjectID string) (*model.Consent, error)
	SetConsent(consent model.Consent) (*model.Consent, error)
	DeleteConsent(subjectID string) error
}

// ConsentService is the default implementation of the ConsentServiceInterface.
type ConsentService struct{}

// GetConsentService creates a new instance of ConsentService.
func GetConsentService() ConsentServiceInterface {

	return &ConsentService{}
}

// GetConsent fetches the consent record of a subject. Returns nil when the
// subject has never recorded a decision.
func (cs *ConsentService) GetConsent(subjectID string) (*model.Consent, error) {

	if subjectID == "" {
		return nil, invalidSubjectError()
	}

	consent, err := store.FindConsent(subjectID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.FETCH_CONSENT, err)
	}
	return consent, nil
}

// SetConsent records a subject's consent decision, replacing any previous one.
func (cs *ConsentService) SetConsent(consent model.Consent) (*model.Consent, error) {

	if consent.SubjectID == "" {
		return nil, invalidSubjectError()
	}

	consent.UpdatedAt = time.Now().UTC().Unix()
	if err := store.UpsertConsent(consent); err != nil {
		return nil, apierrors.NewServerError(apierrors.STORE_CONSENT, err)
	}
	return &consent, nil
}

// DeleteConsent removes the consent record of a subject.
func (cs *ConsentService) DeleteConsent(subjectID string) error {

	if subjectID == "" {
		return invalidSubjectError()
	}

	deleted, err := store.DeleteConsent(subjectID)
	if err != nil {
		return apierrors.NewServerError(apierrors.STORE_CONSENT, err)
	}
	if !deleted {
		return apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.CONSENT_NOT_FOUND.Code,
			Message:     apierrors.CONSENT_NOT_FOUND.Message,
			Description: fmt.Sprintf("No consent record found for subject %s", subjectID),
		}, http.StatusNotFound)
	}
	return nil
}

func invalidSubjectError() error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_REQUEST.Code,
		Message:     apierrors.INVALID_REQUEST.Message,
		Description: "Subject id is required.",
	}, http.StatusBadRequest)
}
