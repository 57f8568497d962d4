package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hirewise/recruiting-data-service/internal/candidates/model"
	"github.com/hirewise/recruiting-data-service/internal/candidates/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/pagination"
	"github.com/hirewise/recruiting-data-service/internal/system/security"
	"github.com/hirewise/recruiting-data-service/internal/system/utils"
)

type CandidateHandler struct{}

func NewCandidateHandler() *CandidateHandler {

	return &CandidateHandler{}
}

// GetCandidates browses candidates with filter, sort and pagination
// parameters.
func (ch *CandidateHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpCandidatesRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, invalidQueryError("Invalid pagination parameters."))
		return
	}

	query := model.CandidateQuery{
		Status: r.URL.Query().Get("status"),
		Skill:  r.URL.Query().Get("skill"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	if raw := r.URL.Query().Get("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil || minScore < 0 {
			utils.HandleError(w, invalidQueryError("min_score must be a non-negative number."))
			return
		}
		query.MinScore = minScore
	}

	// sort is "key" or "key:desc".
	if raw := r.URL.Query().Get("sort"); raw != "" {
		key, direction, found := strings.Cut(raw, ":")
		query.SortBy = key
		if found {
			switch direction {
			case "asc":
			case "desc":
				query.SortDesc = true
			default:
				utils.HandleError(w, invalidQueryError("Sort direction must be asc or desc."))
				return
			}
		}
	}

	candidateService := provider.NewCandidatesProvider().GetCandidateService()
	candidates, total, err := candidateService.BrowseCandidates(query)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, pagination.ListResponse{
		TotalCount: int(total),
		Limit:      page.Limit,
		Offset:     page.Offset,
		Items:      candidates,
	})
}

// GetCandidate fetches one candidate profile.
func (ch *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpCandidatesRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	candidateService := provider.NewCandidatesProvider().GetCandidateService()
	candidate, err := candidateService.GetCandidate(r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, candidate)
}

func invalidQueryError(description string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_REQUEST.Code,
		Message:     apierrors.INVALID_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}
