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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/recruiting-data-service/internal/candidates/model"
	"github.com/hirewise/recruiting-data-service/internal/candidates/provider"
	"github.com/hirewise/recruiting-data-service/internal/candidates/store"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
)

func seedCandidates(t *testing.T) {
	t.Helper()

	now := time.Now().UTC().Unix()
	candidates := []model.Candidate{
		{
			CandidateID:     "cand-go-senior",
			FullName:        "Amara Osei",
			Email:           "amara@example.com",
			Headline:        "Senior backend engineer",
			Skills:          []string{"go", "postgres"},
			ExperienceYears: 8,
			Score:           4.6,
			Status:          "active",
			UpdatedAt:       now,
		},
		{
			CandidateID:     "cand-go-junior",
			FullName:        "Jonas Meyer",
			Email:           "jonas@example.com",
			Skills:          []string{"go"},
			ExperienceYears: 1.5,
			Score:           3.1,
			Status:          "active",
			UpdatedAt:       now,
		},
		{
			CandidateID:     "cand-frontend",
			FullName:        "Priya Nair",
			Email:           "priya@example.com",
			Skills:          []string{"typescript", "angular"},
			ExperienceYears: 5,
			Score:           4.2,
			Status:          "archived",
			UpdatedAt:       now,
		},
	}
	for _, candidate := range candidates {
		require.NoError(t, store.UpsertCandidate(candidate))
	}
}

func TestBrowseCandidates(t *testing.T) {

	seedCandidates(t)
	candidateService := provider.NewCandidatesProvider().GetCandidateService()

	t.Run("defaultSortIsScoreDescending", func(t *testing.T) {
		candidates, total, err := candidateService.BrowseCandidates(model.CandidateQuery{
			Limit: 25,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(3))
		require.NotEmpty(t, candidates)
		for i := 1; i < len(candidates); i++ {
			assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
		}
	})

	t.Run("filterBySkillAndStatus", func(t *testing.T) {
		candidates, total, err := candidateService.BrowseCandidates(model.CandidateQuery{
			Status: "active",
			Skill:  "go",
			Limit:  25,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, candidate := range candidates {
			assert.Contains(t, candidate.Skills, "go")
			assert.Equal(t, "active", candidate.Status)
		}
	})

	t.Run("filterByMinScore", func(t *testing.T) {
		candidates, _, err := candidateService.BrowseCandidates(model.CandidateQuery{
			Skill:    "go",
			MinScore: 4.0,
			Limit:    25,
		})
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "cand-go-senior", candidates[0].CandidateID)
	})

	t.Run("paginationReportsFullTotal", func(t *testing.T) {
		candidates, total, err := candidateService.BrowseCandidates(model.CandidateQuery{
			Skill: "go",
			Limit: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, candidates, 1)
	})

	t.Run("unknownSortKeyIsRejected", func(t *testing.T) {
		_, _, err := candidateService.BrowseCandidates(model.CandidateQuery{
			SortBy: "salary",
			Limit:  25,
		})
		require.Error(t, err)
		var clientErr *apierrors.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, apierrors.INVALID_FILTER.Code, clientErr.Code)
	})
}

func TestGetCandidate(t *testing.T) {

	seedCandidates(t)
	candidateService := provider.NewCandidatesProvider().GetCandidateService()

	candidate, err := candidateService.GetCandidate("cand-go-senior")
	require.NoError(t, err)
	assert.Equal(t, "Amara Osei", candidate.FullName)

	_, err = candidateService.GetCandidate("cand-missing")
	require.Error(t, err)
	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.CANDIDATE_NOT_FOUND.Code, clientErr.Code)
}
