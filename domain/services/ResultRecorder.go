/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package services

import (
	"context"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/domain/ports/out"
)

// ResultRecorder upserts one record per object key. A later run for the same key
// replaces the earlier record.
type ResultRecorder struct {
	repository out.SentimentRepository
}

func NewResultRecorder(repository out.SentimentRepository) *ResultRecorder {
	return &ResultRecorder{repository: repository}
}

func (r *ResultRecorder) Run(ctx context.Context, analysis *entities.Analysis) error {
	if err := r.repository.Save(ctx, analysis.Record()); err != nil {
		return &entities.PersistenceError{Key: analysis.Object.Key, Err: err}
	}

	return nil
}

func (r *ResultRecorder) Name() string {
	return "record"
}
