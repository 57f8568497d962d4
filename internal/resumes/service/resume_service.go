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
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/recruiting-data-service/internal/resumes/model"
	"github.com/hirewise/recruiting-data-service/internal/resumes/store"
	"github.com/hirewise/recruiting-data-service/internal/system/config"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

// ResumeQueue accepts resume ids for asynchronous processing.
type ResumeQueue interface {
	Enqueue(resumeID string)
}

type ResumeServiceInterface interface {
	UploadResume(candidateID, fileName string, file io.Reader, queue ResumeQueue) (*model.Resume, error)
	GetResume(resumeID string) (*model.Resume, error)
	ListResumes(candidateID, status string, limit, offset int) ([]model.Resume, int64, error)
	DeleteResume(resumeID string) error
	ProcessResume(resumeID string) error
}

// ResumeService is the default implementation of the ResumeServiceInterface.
type ResumeService struct{}

// GetResumeService creates a new instance of ResumeService.
func GetResumeService() ResumeServiceInterface {

	return &ResumeService{}
}

// UploadResume validates and stores an uploaded resume, then hands it off to
// the processing queue. The returned record carries the generated resume id.
func (rs *ResumeService) UploadResume(candidateID, fileName string, file io.Reader,
	queue ResumeQueue) (*model.Resume, error) {

	logger := log.GetLogger()

	uploads := config.GetRDSRuntime().Config.Uploads
	if err := validateUpload(fileName, uploads.AllowedExtensions); err != nil {
		return nil, err
	}

	maxSize := uploads.MaxSizeBytes
	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.STORE_RESUME, err)
	}
	if int64(len(content)) > maxSize {
		return nil, invalidUploadError(
			fmt.Sprintf("File exceeds the maximum upload size of %d bytes.", maxSize))
	}
	if len(content) == 0 {
		return nil, invalidUploadError("Uploaded file is empty.")
	}
	if strings.EqualFold(filepath.Ext(fileName), ".txt") && isBinaryData(content) {
		return nil, invalidUploadError("File claims to be plain text but contains binary data.")
	}

	resume := model.Resume{
		ResumeID:    uuid.NewString(),
		CandidateID: candidateID,
		FileName:    filepath.Base(fileName),
		ContentType: contentTypeFor(fileName),
		SizeBytes:   int64(len(content)),
		Status:      constants.ResumeStatusUploaded,
		Content:     content,
		UploadedAt:  time.Now().UTC().Unix(),
	}

	if err := store.AddResume(resume); err != nil {
		return nil, apierrors.NewServerError(apierrors.STORE_RESUME, err)
	}

	if queue != nil {
		queue.Enqueue(resume.ResumeID)
	}
	logger.Debug("Accepted resume upload", log.String("resumeId", resume.ResumeID),
		log.String("fileName", resume.FileName))

	resume.Content = nil
	return &resume, nil
}

// GetResume fetches a single resume record without its raw content.
func (rs *ResumeService) GetResume(resumeID string) (*model.Resume, error) {

	resume, err := store.FindResume(resumeID)
	if err != nil {
		return nil, apierrors.NewServerError(apierrors.FETCH_RESUMES, err)
	}
	if resume == nil {
		return nil, resumeNotFoundError(resumeID)
	}
	return resume, nil
}

// ListResumes lists resume records, optionally filtered by candidate and
// processing status. The second return value is the full matching count.
func (rs *ResumeService) ListResumes(candidateID, status string, limit, offset int) (
	[]model.Resume, int64, error) {

	switch status {
	case "", constants.ResumeStatusUploaded, constants.ResumeStatusProcessing,
		constants.ResumeStatusProcessed, constants.ResumeStatusFailed:
	default:
		return nil, 0, invalidUploadError(fmt.Sprintf("Unknown resume status %q.", status))
	}

	resumes, total, err := store.FindResumes(candidateID, status, limit, offset)
	if err != nil {
		return nil, 0, apierrors.NewServerError(apierrors.FETCH_RESUMES, err)
	}
	if resumes == nil {
		resumes = []model.Resume{}
	}
	return resumes, total, nil
}

// DeleteResume removes a resume record and its stored content.
func (rs *ResumeService) DeleteResume(resumeID string) error {

	deleted, err := store.DeleteResume(resumeID)
	if err != nil {
		return apierrors.NewServerError(apierrors.DELETE_RESUME, err)
	}
	if !deleted {
		return resumeNotFoundError(resumeID)
	}
	return nil
}

// ProcessResume runs text extraction for a stored resume and records the
// outcome. Extraction failures are persisted on the record, not returned.
func (rs *ResumeService) ProcessResume(resumeID string) error {

	logger := log.GetLogger()

	resume, err := store.FindResumeWithContent(resumeID)
	if err != nil {
		return apierrors.NewServerError(apierrors.PROCESS_RESUME, err)
	}
	if resume == nil {
		return resumeNotFoundError(resumeID)
	}

	if err := store.UpdateResumeStatus(resumeID, constants.ResumeStatusProcessing, "", ""); err != nil {
		return apierrors.NewServerError(apierrors.PROCESS_RESUME, err)
	}

	text, extractErr := extractText(resume.FileName, resume.Content)
	if extractErr != nil {
		logger.Warn("Resume text extraction failed", log.String("resumeId", resumeID),
			log.Error(extractErr))
		if err := store.UpdateResumeStatus(resumeID, constants.ResumeStatusFailed, "",
			extractErr.Error()); err != nil {
			return apierrors.NewServerError(apierrors.PROCESS_RESUME, err)
		}
		return nil
	}

	if err := store.UpdateResumeStatus(resumeID, constants.ResumeStatusProcessed, text, ""); err != nil {
		return apierrors.NewServerError(apierrors.PROCESS_RESUME, err)
	}
	logger.Debug("Processed resume", log.String("resumeId", resumeID))
	return nil
}

func validateUpload(fileName string, allowedExtensions []string) error {

	if strings.TrimSpace(fileName) == "" {
		return invalidUploadError("File name is required.")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return invalidUploadError("File name has no extension.")
	}
	for _, allowed := range allowedExtensions {
		if ext == strings.ToLower(strings.TrimSpace(allowed)) {
			return nil
		}
	}
	return invalidUploadError(fmt.Sprintf("File type %s is not accepted.", ext))
}

func contentTypeFor(fileName string) string {

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}

func invalidUploadError(description string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.INVALID_UPLOAD.Code,
		Message:     apierrors.INVALID_UPLOAD.Message,
		Description: description,
	}, http.StatusBadRequest)
}

func resumeNotFoundError(resumeID string) error {
	return apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        apierrors.RESUME_NOT_FOUND.Code,
		Message:     apierrors.RESUME_NOT_FOUND.Message,
		Description: fmt.Sprintf("No resume found with id %s", resumeID),
	}, http.StatusNotFound)
}
