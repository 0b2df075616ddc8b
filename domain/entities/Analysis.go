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

import (
	"fmt"
	"strings"
)

const negativeLabel = "negative"

type ObjectRef struct {
	Bucket     string // Bucket name, as delivered by the notification
	Key        string // Object key, as delivered by the notification (may be URL encoded)
	DecodedKey string // Key with the notification's URL encoding removed
}

// StorageKey is the key to read the object with. Records and alerts keep Key.
func (o ObjectRef) StorageKey() string {
	if o.DecodedKey != "" {
		return o.DecodedKey
	}

	return o.Key
}

// Analysis is the state carried through a single invocation. Each job fills the
// fields it owns and later jobs only read them.
type Analysis struct {
	RequestID  string
	Object     ObjectRef
	Text       string // Decoded object content
	Completion string // Raw classifier output
	Sentiment  string // Completion without leading/trailing whitespace
	Alerted    bool   // At least one notifier accepted the alert
}

func NewAnalysis(requestID string, object ObjectRef) *Analysis {
	return &Analysis{RequestID: requestID, Object: object}
}

// IsNegative matches "negative" anywhere in the sentiment, ignoring case. The stored
// sentiment itself is never normalized.
func (a *Analysis) IsNegative() bool {
	return strings.Contains(strings.ToLower(a.Sentiment), negativeLabel)
}

func (a *Analysis) Summary() string {
	return fmt.Sprintf("Processed %s with sentiment: %s", a.Object.Key, a.Sentiment)
}

type SentimentRecord struct {
	File      string
	Sentiment string
}

func (a *Analysis) Record() SentimentRecord {
	return SentimentRecord{File: a.Object.Key, Sentiment: a.Sentiment}
}
