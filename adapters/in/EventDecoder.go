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

package in

import (
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
	"sentiment-sentry/domain/entities"
)

// DecodeEvent extracts the object reference from the first record of an S3 notification.
// Any further records are ignored.
func DecodeEvent(payload []byte) (entities.ObjectRef, error) {
	var notification events.S3Event

	// S3Object decoding also URL decodes the key, so a badly encoded key fails here.
	if err := json.Unmarshal(payload, &notification); err != nil {
		return entities.ObjectRef{}, &entities.MalformedEventError{Reason: "event is not an s3 notification", Err: err}
	}

	if len(notification.Records) == 0 {
		return entities.ObjectRef{}, &entities.MalformedEventError{Reason: "event has no records"}
	}

	s3 := notification.Records[0].S3
	if s3.Bucket.Name == "" || s3.Object.Key == "" {
		return entities.ObjectRef{}, &entities.MalformedEventError{Reason: "record has no bucket name or object key"}
	}

	return entities.ObjectRef{Bucket: s3.Bucket.Name, Key: s3.Object.Key, DecodedKey: s3.Object.URLDecodedKey}, nil
}
