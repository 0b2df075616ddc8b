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
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "malformed event", err: &MalformedEventError{Reason: "no records"}, expectedCode: http.StatusBadRequest, expectedBody: "Invalid S3 trigger event."},
		{name: "fetch", err: &FetchError{Bucket: "b1", Key: "k", Err: cause}, expectedCode: http.StatusInternalServerError, expectedBody: "Failed to read file from S3."},
		{name: "classification", err: &ClassificationError{Key: "k", Err: cause}, expectedCode: http.StatusInternalServerError, expectedBody: "Failed to get response from Bedrock."},
		{name: "persistence", err: &PersistenceError{Key: "k", Err: cause}, expectedCode: http.StatusInternalServerError, expectedBody: "Failed to write to DynamoDB."},
		{name: "wrapped persistence", err: fmt.Errorf("stage record. %w", &PersistenceError{Key: "k", Err: cause}), expectedCode: http.StatusInternalServerError, expectedBody: "Failed to write to DynamoDB."},
		{name: "untyped", err: cause, expectedCode: http.StatusInternalServerError, expectedBody: "Internal error."},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expectedCode, StatusCode(test.err))
			assert.Equal(t, test.expectedBody, ResponseBody(test.err))
		})
	}

	assert.Equal(t, http.StatusOK, StatusCode(nil))
}

func TestErrorsUnwrapToCause(t *testing.T) {
	cause := errors.New("access denied")

	assert.ErrorIs(t, &FetchError{Bucket: "b1", Key: "k", Err: cause}, cause)
	assert.ErrorIs(t, &ClassificationError{Key: "k", Err: cause}, cause)
	assert.ErrorIs(t, &PersistenceError{Key: "k", Err: cause}, cause)
	assert.ErrorIs(t, &AlertError{Key: "k", Err: cause}, cause)
	assert.ErrorIs(t, &MalformedEventError{Reason: "invalid json", Err: cause}, cause)
}

func TestAlertErrorIsNotStatusError(t *testing.T) {
	var statusErr StatusError
	assert.False(t, errors.As(&AlertError{Key: "k", Err: errors.New("topic missing")}, &statusErr))
}

func TestAnalysisNegativeMatch(t *testing.T) {
	tests := []struct {
		sentiment string
		negative  bool
	}{
		{sentiment: "negative", negative: true},
		{sentiment: "Negative.", negative: true},
		{sentiment: "NOT NEGATIVE", negative: true},
		{sentiment: "The sentiment is negative", negative: true},
		{sentiment: "positive", negative: false},
		{sentiment: "neutral", negative: false},
		{sentiment: "", negative: false},
	}

	for _, test := range tests {
		analysis := Analysis{Sentiment: test.sentiment}
		assert.Equal(t, test.negative, analysis.IsNegative(), test.sentiment)
	}
}

func TestAnalysisRecordKeepsSentimentCase(t *testing.T) {
	analysis := NewAnalysis("req", ObjectRef{Bucket: "b1", Key: "reviews/1.txt"})
	analysis.Sentiment = "Negative"

	assert.Equal(t, SentimentRecord{File: "reviews/1.txt", Sentiment: "Negative"}, analysis.Record())
	assert.Equal(t, "Processed reviews/1.txt with sentiment: Negative", analysis.Summary())
}

func TestNegativeSentimentAlert(t *testing.T) {
	alert := NewNegativeSentimentAlert(DefaultAlertSubject, "reviews/1.txt")

	assert.Equal(t, "Sentiment Alert", alert.Subject)
	assert.Equal(t, "Negative sentiment detected in file: reviews/1.txt", alert.Message)
	assert.Equal(t, "reviews/1.txt", alert.File)
}
