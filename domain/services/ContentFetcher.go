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
	"sentiment-sentry/fileutils"
	"sentiment-sentry/logging"
)

type ContentFetcher struct {
	storage out.ObjectStorage
	logger  logging.Logger
}

func NewContentFetcher(storage out.ObjectStorage, logger logging.Logger) *ContentFetcher {
	return &ContentFetcher{storage: storage, logger: logger}
}

func (c *ContentFetcher) Run(ctx context.Context, analysis *entities.Analysis) error {
	object := analysis.Object

	data, err := c.storage.Read(ctx, object.Bucket, object.StorageKey())
	if err != nil {
		return &entities.FetchError{Bucket: object.Bucket, Key: object.Key, Err: err}
	}

	text, err := fileutils.DecodeText(data)
	if err != nil {
		return &entities.FetchError{Bucket: object.Bucket, Key: object.Key, Err: err}
	}

	c.logger.Debugw("Object fetched", "bucket", object.Bucket, "key", object.Key, "size", len(data),
		"content_type", fileutils.DetectMIME(data))
	analysis.Text = text

	return nil
}

func (c *ContentFetcher) Name() string {
	return "fetch"
}
