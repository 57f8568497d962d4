package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hirewise/recruiting-data-service/internal/feedback/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/pagination"
	"github.com/hirewise/recruiting-data-service/internal/system/security"
	"github.com/hirewise/recruiting-data-service/internal/system/utils"
)

// Cap on the in-memory portion of a workbook upload.
const workbookMemoryLimit = 16 << 20

type FeedbackHandler struct{}

func NewFeedbackHandler() *FeedbackHandler {

	return &FeedbackHandler{}
}

// ImportQuestionnaire handles a questionnaire workbook upload.
func (fh *FeedbackHandler) ImportQuestionnaire(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpFeedbackWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(workbookMemoryLimit); err != nil {
		utils.HandleError(w, invalidWorkbookError("Request is not a valid multipart upload."))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.HandleError(w, invalidWorkbookError("Multipart field \"file\" is required."))
		return
	}
	defer file.Close()

	feedbackService := provider.NewFeedbackProvider().GetFeedbackService()
	result, err := feedbackService.ImportQuestionnaire(file)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, result)
}

// GetPayments lists payment records with an optional status filter.
func (fh *FeedbackHandler) GetPayments(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpFeedbackRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_REQUEST.Code,
			Message:     apierrors.INVALID_REQUEST.Message,
			Description: "Invalid pagination parameters.",
		}, http.StatusBadRequest))
		return
	}

	feedbackService := provider.NewFeedbackProvider().GetFeedbackService()
	payments, total, err := feedbackService.GetPayments(r.URL.Query().Get("status"),
		page.Limit, page.Offset)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, pagination.ListResponse{
		TotalCount: int(total),
		Limit:      page.Limit,
		Offset:     page.Offset,
		Items:      payments,
	})
}

// GetPayment fetches one payment record.
func (fh *FeedbackHandler) GetPayment(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpFeedbackRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	feedbackService := provider.NewFeedbackProvider().GetFeedbackService()
	payment, err := feedbackService.GetPayment(r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, payment)
}

// UpdatePaymentStatus marks a payment as paid or rejected.
func (fh *FeedbackHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpFeedbackWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	var body struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_REQUEST.Code,
			Message:     apierrors.INVALID_REQUEST.Message,
			Description: "Malformed JSON in request body.",
		}, http.StatusBadRequest))
		return
	}

	feedbackService := provider.NewFeedbackProvider().GetFeedbackService()
	payment, err := feedbackService.UpdatePaymentStatus(r.PathValue("id"), body.PaymentStatus)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, payment)
}

func invalidWorkbookError(description string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_WORKBOOK.Code,
		Message:     apierrors.INVALID_WORKBOOK.Message,
		Description: description,
	}, http.StatusBadRequest)
}
