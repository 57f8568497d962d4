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

package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirewise/recruiting-data-service/internal/resumes/model"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/database/document"
)

// AddResume inserts a resume document.
func AddResume(resume model.Resume) error {

	db, err := document.GetDatabase()
	if err != nil {
		return errors.Wrap(err, "failed to get document database for resume insert")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = db.Collection(constants.ResumeCollection).InsertOne(ctx, resume)
	if err != nil {
		return errors.Wrapf(err, "failed to insert resume %s", resume.ResumeID)
	}
	return nil
}

// FindResume fetches one resume by its id, excluding the raw content bytes.
// Returns nil when absent.
func FindResume(resumeID string) (*model.Resume, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get document database for resume lookup")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"content": 0})
	var resume model.Resume
	err = db.Collection(constants.ResumeCollection).
		FindOne(ctx, bson.M{"resume_id": resumeID}, opts).Decode(&resume)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to fetch resume %s", resumeID)
	}
	return &resume, nil
}

// FindResumeWithContent fetches one resume including its raw content bytes.
func FindResumeWithContent(resumeID string) (*model.Resume, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get document database for resume lookup")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var resume model.Resume
	err = db.Collection(constants.ResumeCollection).
		FindOne(ctx, bson.M{"resume_id": resumeID}).Decode(&resume)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to fetch resume %s", resumeID)
	}
	return &resume, nil
}

// FindResumes lists resume documents, optionally filtered by candidate and
// status, excluding raw content bytes.
func FindResumes(candidateID, status string, limit, offset int) ([]model.Resume, int64, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to get document database for resume listing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if candidateID != "" {
		filter["candidate_id"] = candidateID
	}
	if status != "" {
		filter["status"] = status
	}

	collection := db.Collection(constants.ResumeCollection)

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count resumes")
	}

	opts := options.Find().
		SetProjection(bson.M{"content": 0}).
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list resumes")
	}
	defer cursor.Close(ctx)

	var resumes []model.Resume
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode resume listing")
	}
	return resumes, total, nil
}

// UpdateResumeStatus flips the processing status of a resume. Extracted text
// and failure reason are set when non-empty, and the content bytes are
// dropped once processing finished.
func UpdateResumeStatus(resumeID, status, extractedText, failureReason string) error {

	db, err := document.GetDatabase()
	if err != nil {
		return errors.Wrap(err, "failed to get document database for resume update")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set := bson.M{"status": status}
	unset := bson.M{}
	if extractedText != "" {
		set["extracted_text"] = extractedText
	}
	if failureReason != "" {
		set["failure_reason"] = failureReason
	}
	if status == constants.ResumeStatusProcessed || status == constants.ResumeStatusFailed {
		set["processed_at"] = time.Now().UTC().Unix()
		unset["content"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	_, err = db.Collection(constants.ResumeCollection).
		UpdateOne(ctx, bson.M{"resume_id": resumeID}, update)
	if err != nil {
		return errors.Wrapf(err, "failed to update status of resume %s", resumeID)
	}
	return nil
}

// DeleteResume removes a resume document.
func DeleteResume(resumeID string) (bool, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return false, errors.Wrap(err, "failed to get document database for resume delete")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.Collection(constants.ResumeCollection).
		DeleteOne(ctx, bson.M{"resume_id": resumeID})
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete resume %s", resumeID)
	}
	return res.DeletedCount > 0, nil
}
