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

	"github.com/hirewise/recruiting-data-service/internal/candidates/model"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/database/document"
)

// FindCandidates lists candidate profiles matching the query. The sort key
// must already be validated against the allowed set.
func FindCandidates(query model.CandidateQuery) ([]model.Candidate, int64, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to get document database for candidate listing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Skill != "" {
		filter["skills"] = query.Skill
	}
	if query.MinScore > 0 {
		filter["score"] = bson.M{"$gte": query.MinScore}
	}

	collection := db.Collection(constants.CandidateCollection)

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count candidates")
	}

	sortDirection := 1
	if query.SortDesc {
		sortDirection = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: query.SortBy, Value: sortDirection}}).
		SetLimit(int64(query.Limit)).
		SetSkip(int64(query.Offset))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list candidates")
	}
	defer cursor.Close(ctx)

	var candidates []model.Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode candidate listing")
	}
	return candidates, total, nil
}

// FindCandidate fetches one candidate by id. Returns nil when absent.
func FindCandidate(candidateID string) (*model.Candidate, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get document database for candidate lookup")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var candidate model.Candidate
	err = db.Collection(constants.CandidateCollection).
		FindOne(ctx, bson.M{"candidate_id": candidateID}).Decode(&candidate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to fetch candidate %s", candidateID)
	}
	return &candidate, nil
}

// UpsertCandidate inserts or replaces a candidate profile.
func UpsertCandidate(candidate model.Candidate) error {

	db, err := document.GetDatabase()
	if err != nil {
		return errors.Wrap(err, "failed to get document database for candidate upsert")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err = db.Collection(constants.CandidateCollection).
		ReplaceOne(ctx, bson.M{"candidate_id": candidate.CandidateID}, candidate, opts)
	if err != nil {
		return errors.Wrapf(err, "failed to upsert candidate %s", candidate.CandidateID)
	}
	return nil
}
