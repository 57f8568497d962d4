package handler

import (
	"net/http"

	"github.com/hirewise/recruiting-data-service/internal/resumes/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/pagination"
	"github.com/hirewise/recruiting-data-service/internal/system/security"
	"github.com/hirewise/recruiting-data-service/internal/system/utils"
	"github.com/hirewise/recruiting-data-service/internal/system/workers"
)

// Cap on the in-memory portion of a multipart upload.
const multipartMemoryLimit = 8 << 20

type ResumeHandler struct{}

func NewResumeHandler() *ResumeHandler {

	return &ResumeHandler{}
}

// UploadResume handles a multipart resume upload.
func (rh *ResumeHandler) UploadResume(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpResumesWrite); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_UPLOAD.Code,
			Message:     apierrors.INVALID_UPLOAD.Message,
			Description: "Request is not a valid multipart upload.",
		}, http.StatusBadRequest))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.HandleError(w, apierrors.NewClientError(apierrors.ErrorMessage{
			Code:        apierrors.INVALID_UPLOAD.Code,
			Message:     apierrors.INVALID_UPLOAD.Message,
			Description: "Multipart field \"file\" is required.",
		}, http.StatusBadRequest))
		return
	}
	defer file.Close()

	candidateID := r.FormValue("candidate_id")

	resumeService := provider.NewResumesProvider().GetResumeService()
	resume, err := resumeService.UploadResume(candidateID, header.Filename, file,
		&workers.ResumeWorkerQueue{})
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, resume)
}

// GetResumes lists resumes with optional candidate and status filters.
func (rh *ResumeHandler) GetResumes(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpResumesRead); err != nil {
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

	resumeService := provider.NewResumesProvider().GetResumeService()
	resumes, total, err := resumeService.ListResumes(r.URL.Query().Get("candidate_id"),
		r.URL.Query().Get("status"), page.Limit, page.Offset)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, pagination.ListResponse{
		TotalCount: int(total),
		Limit:      page.Limit,
		Offset:     page.Offset,
		Items:      resumes,
	})
}

// GetResume fetches a single resume record.
func (rh *ResumeHandler) GetResume(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpResumesRead); err != nil {
		utils.HandleError(w, err)
		return
	}

	resumeService := provider.NewResumesProvider().GetResumeService()
	resume, err := resumeService.GetResume(r.PathValue("id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, resume)
}

// DeleteResume removes a resume record and its content.
func (rh *ResumeHandler) DeleteResume(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnAndAuthz(r, constants.OpResumesDelete); err != nil {
		utils.HandleError(w, err)
		return
	}

	resumeService := provider.NewResumesProvider().GetResumeService()
	if err := resumeService.DeleteResume(r.PathValue("id")); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
