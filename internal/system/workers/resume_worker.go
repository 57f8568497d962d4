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

package workers

import (
	"github.com/hirewise/recruiting-data-service/internal/resumes/provider"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/log"
)

var ResumeQueue chan string

// StartResumeWorker starts the background worker that runs text extraction
// for uploaded resumes.
func StartResumeWorker() {

	ResumeQueue = make(chan string, constants.DefaultResumeQueueSize)

	go func() {
		for resumeID := range ResumeQueue {
			resumeService := provider.NewResumesProvider().GetResumeService()
			if err := resumeService.ProcessResume(resumeID); err != nil {
				log.GetLogger().Error("Failed to process resume",
					log.String("resumeId", resumeID), log.Error(err))
			}
		}
	}()
}

func EnqueueResumeForProcessing(resumeID string) {
	if ResumeQueue != nil {
		ResumeQueue <- resumeID
	}
}

// ResumeWorkerQueue adapts the processing queue to the resume service.
type ResumeWorkerQueue struct{}

func (q *ResumeWorkerQueue) Enqueue(resumeID string) {
	EnqueueResumeForProcessing(resumeID)
}
