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

	"github.com/hirewise/recruiting-data-service/internal/candidates/model"
	"github.com/hirewise/recruiting-data-service/internal/candidates/store"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
)

const defaultSortKey = "score"

type CandidateServiceInterface interface {
	BrowseCandidates(query model.CandidateQuery) ([]model.Candidate, int64, error)
	GetCandidate(candidateID string) (*model.Candidate, error)
}

// CandidateService is the default implementation of the CandidateServiceInterface.
type CandidateService struct{}

// GetCandidateService creates a new instance of CandidateService.
func GetCandidateService() CandidateServiceInterface {

	return &CandidateService{}
}

// BrowseCandidates lists candidates with filters, sorting and pagination.
// An empty sort key defaults to score descending.
func (cs *CandidateService) BrowseCandidates(query model.CandidateQuery) (
	[]model.Candidate, int64, error) {

	if query.SortBy == "" {
		query.SortBy = defaultSortKey
		query.SortDesc = true
	}
	if !constants.AllowedCandidateSortKeys[query.SortBy] {
		return nil, 0, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_FILTER.Code,
			Message:     apierrors.INVALID_FILTER.Message,
			Description: fmt.Sprintf("Sorting by %q is not supported.", query.SortBy),
		}, http.StatusBadRequest)
	}

	candidates, total, err := store.FindCandidates(query)
	if err != nil {
		return nil, 0, apierrors.NewServerError(apierrors.FETCH_CANDIDATES, err)
	}
	if candidates == nil {
		candidates = []model.Candidate{}
	}
	return candidates, total, nil
}

// GetCandidate fetches a single candidate profile.
func (cs *CandidateService) GetCandidate(candidateID string) (*model.Candidate, error) {

	candidate, err := store.FindCandidate(candidateID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.FETCH_CANDIDATES, err)
	}
	if candidate == nil {
		return nil, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.CANDIDATE_NOT_FOUND.Code,
			Message:     apierrors.CANDIDATE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No candidate found with id %s", candidateID),
		}, http.StatusNotFound)
	}
	return candidate, nil
}
