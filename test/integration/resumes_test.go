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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/recruiting-data-service/internal/resumes/provider"
	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
)

const sampleResumeText = "Amara Osei. Senior backend engineer with eight years of " +
	"experience building payment and identity systems in Go and Postgres."

func TestResumeUploadAndProcessing(t *testing.T) {

	resumeService := provider.NewResumesProvider().GetResumeService()

	uploaded, err := resumeService.UploadResume("cand-go-senior", "amara-osei.txt",
		strings.NewReader(sampleResumeText), nil)
	require.NoError(t, err)
	require.NotEmpty(t, uploaded.ResumeID)
	assert.Equal(t, "uploaded", uploaded.Status)
	assert.Equal(t, "text/plain", uploaded.ContentType)
	assert.Equal(t, int64(len(sampleResumeText)), uploaded.SizeBytes)
	assert.Nil(t, uploaded.Content)

	require.NoError(t, resumeService.ProcessResume(uploaded.ResumeID))

	processed, err := resumeService.GetResume(uploaded.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, "processed", processed.Status)
	assert.Equal(t, sampleResumeText, processed.ExtractedText)
	assert.NotZero(t, processed.ProcessedAt)
}

func TestResumeProcessingFailureIsRecorded(t *testing.T) {

	resumeService := provider.NewResumesProvider().GetResumeService()

	// docx extraction is unsupported, so processing must park the record as
	// failed with a reason instead of erroring out of the worker.
	uploaded, err := resumeService.UploadResume("cand-go-junior", "jonas.docx",
		strings.NewReader(sampleResumeText), nil)
	require.NoError(t, err)

	require.NoError(t, resumeService.ProcessResume(uploaded.ResumeID))

	failed, err := resumeService.GetResume(uploaded.ResumeID)
	require.NoError(t, err)
	assert.Equal(t, "failed", failed.Status)
	assert.Contains(t, failed.FailureReason, "docx")
	assert.Empty(t, failed.ExtractedText)
}

func TestResumeUploadRejections(t *testing.T) {

	resumeService := provider.NewResumesProvider().GetResumeService()
	var clientErr *apierrors.ClientError

	_, err := resumeService.UploadResume("cand-1", "resume.exe",
		strings.NewReader(sampleResumeText), nil)
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.INVALID_UPLOAD.Code, clientErr.Code)

	_, err = resumeService.UploadResume("cand-1", "empty.txt", strings.NewReader(""), nil)
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.INVALID_UPLOAD.Code, clientErr.Code)

	_, err = resumeService.UploadResume("cand-1", "fake.txt",
		strings.NewReader("%PDF-1.7 binary payload pretending to be text"), nil)
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.INVALID_UPLOAD.Code, clientErr.Code)
}

func TestListAndDeleteResumes(t *testing.T) {

	resumeService := provider.NewResumesProvider().GetResumeService()
	candidateID := "cand-list-resumes"

	first, err := resumeService.UploadResume(candidateID, "first.txt",
		strings.NewReader(sampleResumeText), nil)
	require.NoError(t, err)
	_, err = resumeService.UploadResume(candidateID, "second.txt",
		strings.NewReader(sampleResumeText), nil)
	require.NoError(t, err)

	resumes, total, err := resumeService.ListResumes(candidateID, "", 25, 0)
	require.NoError(t, err)
	assert.Len(t, resumes, 2)
	assert.Equal(t, int64(2), total)

	// A page smaller than the collection still reports the full count.
	firstPage, pagedTotal, err := resumeService.ListResumes(candidateID, "", 1, 0)
	require.NoError(t, err)
	assert.Len(t, firstPage, 1)
	assert.Equal(t, int64(2), pagedTotal)

	uploadedOnly, _, err := resumeService.ListResumes(candidateID, "uploaded", 25, 0)
	require.NoError(t, err)
	assert.Len(t, uploadedOnly, 2)

	_, _, err = resumeService.ListResumes(candidateID, "archived", 25, 0)
	var clientErr *apierrors.ClientError
	require.ErrorAs(t, err, &clientErr)

	require.NoError(t, resumeService.DeleteResume(first.ResumeID))

	resumes, total, err = resumeService.ListResumes(candidateID, "", 25, 0)
	require.NoError(t, err)
	assert.Len(t, resumes, 1)
	assert.Equal(t, int64(1), total)

	err = resumeService.DeleteResume(first.ResumeID)
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, apierrors.RESUME_NOT_FOUND.Code, clientErr.Code)
}
