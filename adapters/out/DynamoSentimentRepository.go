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

package out

import (
	"context"
	"github.com/pkg/errors"
	adapterentities "sentiment-sentry/adapters/entities"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/pkg/awsutils"
)

var ErrNoTable = errors.New("no sentiment table configured")

type DynamoSentimentRepository struct {
	dynamo *awsutils.DynamoDB
	table  string
}

func NewDynamoSentimentRepository(dynamo *awsutils.DynamoDB, table string) *DynamoSentimentRepository {
	return &DynamoSentimentRepository{dynamo: dynamo, table: table}
}

func (d *DynamoSentimentRepository) Save(ctx context.Context, record entities.SentimentRecord) error {
	if d.table == "" {
		return ErrNoTable
	}

	err := d.dynamo.PutItem(ctx, d.table, adapterentities.MapToSentimentItem(record))
	if err != nil {
		return errors.Wrapf(err, "put item into %s failed", d.table)
	}

	return nil
}
