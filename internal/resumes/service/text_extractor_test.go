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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinaryData(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{name: "empty", content: nil, want: false},
		{name: "plain text", content: []byte("Jordan Reyes\nSenior backend engineer\n"), want: false},
		{name: "pdf magic", content: []byte("%PDF-1.7 rest of file"), want: true},
		{name: "zip magic", content: []byte("PK\x03\x04docx container"), want: true},
		{name: "mostly control bytes", content: bytes.Repeat([]byte{0x00, 0x01, 'a'}, 400), want: true},
		{name: "text with tabs and newlines", content: []byte("name\tJordan\r\nrole\tengineer\n"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isBinaryData(tt.content))
		})
	}
}

func TestExtractTextPlainText(t *testing.T) {
	content := []byte("Jordan Reyes\n10 years of distributed systems work.\n")

	text, err := extractText("resume.txt", content)

	require.NoError(t, err)
	assert.Equal(t, string(content), text)
}

func TestExtractTextRejectsBinaryLabeledAsText(t *testing.T) {
	_, err := extractText("resume.txt", []byte("%PDF-1.7 binary body"))

	assert.Error(t, err)
}

func TestExtractTextRejectsDocx(t *testing.T) {
	_, err := extractText("resume.docx", []byte("PK\x03\x04"))

	assert.Error(t, err)
}

func TestExtractTextRejectsUnknownExtension(t *testing.T) {
	_, err := extractText("resume.png", []byte("not a resume"))

	assert.Error(t, err)
}

func TestValidateUpload(t *testing.T) {
	allowed := []string{".pdf", ".doc", ".txt"}

	assert.NoError(t, validateUpload("resume.pdf", allowed))
	assert.NoError(t, validateUpload("resume.TXT", allowed))
	assert.Error(t, validateUpload("resume.exe", allowed))
	assert.Error(t, validateUpload("resume", allowed))
	assert.Error(t, validateUpload("   ", allowed))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("cv.pdf"))
	assert.Equal(t, "application/msword", contentTypeFor("cv.doc"))
	assert.Equal(t, "text/plain", contentTypeFor("cv.txt"))
}
