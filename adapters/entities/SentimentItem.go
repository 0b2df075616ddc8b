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

package entities

import "sentiment-sentry/domain/entities"

// SentimentItem is the DynamoDB shape of a sentiment record. File is the partition key.
type SentimentItem struct {
	File      string `dynamodbav:"File"`
	Sentiment string `dynamodbav:"Sentiment"`
}

func MapToSentimentItem(record entities.SentimentRecord) SentimentItem {
	return SentimentItem{File: record.File, Sentiment: record.Sentiment}
}
