package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hirewise/recruiting-data-service/internal/consent/model"
	"github.com/hirewise/recruiting-data-service/internal/consent/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/security"
	"github.com/hirewise/recruiting-data-service/internal/system/utils"
)

type ConsentHandler struct{}

func NewConsentHandler() *ConsentHandler {

	return &ConsentHandler{}
}

// GetConsent fetches the consent record of a subject.
func (ch *ConsentHandler) GetConsent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpConsentsRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	subjectID := r.PathValue("subject")
	consentService := provider.NewConsentProvider().GetConsentService()
	consent, err := consentService.GetConsent(subjectID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if consent == nil {
		utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.CONSENT_NOT_FOUND.Code,
			Message:     apierrors.CONSENT_NOT_FOUND.Message,
			Description: "No consent record found for subject " + subjectID,
		}, http.StatusNotFound))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, consent)
}

// SetConsent records or replaces the consent decision of a subject.
func (ch *ConsentHandler) SetConsent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpConsentsWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	var consent model.Consent
	if err := json.NewDecoder(r.Body).Decode(&consent); err != nil {
		utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_REQUEST.Code,
			Message:     apierrors.INVALID_REQUEST.Message,
			Description: "Invalid request payload",
		}, http.StatusBadRequest))
		return
	}
	consent.SubjectID = r.PathValue("subject")

	consentService := provider.NewConsentProvider().GetConsentService()
	stored, err := consentService.SetConsent(consent)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stored)
}

// DeleteConsent removes the consent record of a subject.
func (ch *ConsentHandler) DeleteConsent(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpConsentsWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	subjectID := r.PathValue("subject")
	consentService := provider.NewConsentProvider().GetConsentService()
	if err := consentService.DeleteConsent(subjectID); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
