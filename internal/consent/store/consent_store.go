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

	"github.com/hirewise/recruiting-data-service/internal/consent/model"
	"github.com/hirewise/recruiting-data-service/internal/system/constants"
	"github.com/hirewise/recruiting-data-service/internal/system/database/document"
)

// UpsertConsent stores the consent record for a subject, replacing any
// previous record.
func UpsertConsent(consent model.Consent) error {

	db, err := document.GetDatabase()
	if err != nil {
		return errors.Wrap(err, "failed to get document database for consent upsert")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"subject_id": consent.SubjectID}
	update := bson.M{"$set": consent}
	opts := options.Update().SetUpsert(true)

	_, err = db.Collection(constants.ConsentCollection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.Wrapf(err, "failed to upsert consent for subject %s", consent.SubjectID)
	}
	return nil
}

// FindConsent fetches the consent record for a subject. Returns nil when absent.
func FindConsent(subjectID string) (*model.Consent, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get document database for consent lookup")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var consent model.Consent
	err = db.Collection(constants.ConsentCollection).
		FindOne(ctx, bson.M{"subject_id": subjectID}).Decode(&consent)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to fetch consent for subject %s", subjectID)
	}
	return &consent, nil
}

// DeleteConsent removes the consent record for a subject.
func DeleteConsent(subjectID string) (bool, error) {

	db, err := document.GetDatabase()
	if err != nil {
		return false, errors.Wrap(err, "failed to get document database for consent delete")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.Collection(constants.ConsentCollection).
		DeleteOne(ctx, bson.M{"subject_id": subjectID})
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete consent for subject %s", subjectID)
	}
	return res.DeletedCount > 0, nil
}
