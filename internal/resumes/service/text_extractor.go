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
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// minExtractedTextLength is the minimum output length treated as a
	// successful extraction.
	minExtractedTextLength = 50
	// binarySampleSize is the number of bytes sampled for binary detection.
	binarySampleSize = 1000
	// binaryThreshold is the proportion of non-printable characters above
	// which content is treated as binary.
	binaryThreshold = 0.3
)

// extractText pulls plain text out of an uploaded resume. PDF and DOC
// extraction shell out to pdftotext and antiword.
func extractText(fileName string, content []byte) (string, error) {

	ext := strings.ToLower(filepath.Ext(fileName))

	switch ext {
	case ".txt":
		if isBinaryData(content) {
			return "", fmt.Errorf("text file %s contains binary data", fileName)
		}
		return string(content), nil
	case ".pdf":
		return extractPDF(content)
	case ".doc":
		return extractDOC(content)
	case ".docx":
		return "", fmt.Errorf("docx extraction is not supported, convert to pdf or plain text")
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

func extractPDF(content []byte) (string, error) {

	path, cleanup, err := writeTempFile(content, "resume-*.pdf")
	if err != nil {
		return "", err
	}
	defer cleanup()

	output, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed (install poppler-utils): %w", err)
	}

	text := string(output)
	if len(text) < minExtractedTextLength {
		return "", fmt.Errorf("extracted text is too short, extraction likely failed")
	}
	return text, nil
}

func extractDOC(content []byte) (string, error) {

	path, cleanup, err := writeTempFile(content, "resume-*.doc")
	if err != nil {
		return "", err
	}
	defer cleanup()

	output, err := exec.Command("antiword", path).Output()
	if err != nil {
		return "", fmt.Errorf("antiword failed: %w", err)
	}
	return string(output), nil
}

func writeTempFile(content []byte, pattern string) (string, func(), error) {

	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file for extraction: %w", err)
	}
	path := file.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := file.Write(content); err != nil {
		file.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to stage content for extraction: %w", err)
	}
	if err := file.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to stage content for extraction: %w", err)
	}
	return path, cleanup, nil
}

// isBinaryData reports whether the content looks like a binary document
// rather than plain text.
func isBinaryData(content []byte) bool {

	if len(content) == 0 {
		return false
	}

	// PDF magic number.
	if strings.HasPrefix(string(content[:min(5, len(content))]), "%PDF-") {
		return true
	}
	// ZIP magic number, covers DOCX containers.
	if len(content) >= 2 && content[0] == 'P' && content[1] == 'K' {
		return true
	}

	sampleSize := min(binarySampleSize, len(content))
	nonPrintable := 0
	for i := 0; i < sampleSize; i++ {
		ch := content[i]
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(sampleSize) > binaryThreshold
}
