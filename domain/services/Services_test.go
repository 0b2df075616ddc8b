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
	"errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/logging"
	"sentiment-sentry/mocks"
	"testing"
)

var testObject = entities.ObjectRef{Bucket: "reviews-bucket", Key: "reviews/2024/review+1.txt"}

func TestContentFetcher(t *testing.T) {
	t.Run("decodes utf-8 content", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		storage := mocks.NewMockObjectStorage(mockCtrl)
		storage.EXPECT().Read(gomock.Any(), "reviews-bucket", "reviews/2024/review+1.txt").Return([]byte("Great product, fast shipping."), nil).Times(1)

		analysis := entities.NewAnalysis("req", testObject)
		err := NewContentFetcher(storage, logging.NewDiscardLog()).Run(context.Background(), analysis)

		require.NoError(t, err)
		assert.Equal(t, "Great product, fast shipping.", analysis.Text)
	})

	t.Run("reads with decoded key when present", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		object := entities.ObjectRef{Bucket: "reviews-bucket", Key: "reviews/2024/review+1.txt", DecodedKey: "reviews/2024/review 1.txt"}
		storage := mocks.NewMockObjectStorage(mockCtrl)
		storage.EXPECT().Read(gomock.Any(), "reviews-bucket", "reviews/2024/review 1.txt").Return([]byte("ok"), nil).Times(1)

		analysis := entities.NewAnalysis("req", object)

		require.NoError(t, NewContentFetcher(storage, logging.NewDiscardLog()).Run(context.Background(), analysis))
		assert.Equal(t, "ok", analysis.Text)
	})

	t.Run("empty object is valid text", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		storage := mocks.NewMockObjectStorage(mockCtrl)
		storage.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{}, nil).Times(1)

		analysis := entities.NewAnalysis("req", testObject)

		assert.NoError(t, NewContentFetcher(storage, logging.NewDiscardLog()).Run(context.Background(), analysis))
		assert.Empty(t, analysis.Text)
	})

	t.Run("missing object", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		cause := errors.New("NoSuchKey")
		storage := mocks.NewMockObjectStorage(mockCtrl)
		storage.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cause).Times(1)

		err := NewContentFetcher(storage, logging.NewDiscardLog()).Run(context.Background(), entities.NewAnalysis("req", testObject))

		var fetchErr *entities.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "reviews-bucket", fetchErr.Bucket)
	})

	t.Run("non utf-8 content", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		storage := mocks.NewMockObjectStorage(mockCtrl)
		storage.EXPECT().Read(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{0xc3, 0x28}, nil).Times(1)

		analysis := entities.NewAnalysis("req", testObject)
		err := NewContentFetcher(storage, logging.NewDiscardLog()).Run(context.Background(), analysis)

		var fetchErr *entities.FetchError
		assert.ErrorAs(t, err, &fetchErr)
		assert.Empty(t, analysis.Text)
	})
}

func TestBuildPrompt(t *testing.T) {
	expected := "\n\nHuman: What is the sentiment of this text? Respond with 'positive', 'neutral', or 'negative'.\n\nI love it\n\nAssistant:"

	assert.Equal(t, expected, BuildPrompt("I love it"))
}

func TestSentimentClassifier(t *testing.T) {
	t.Run("trims completion and keeps raw text", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		model := mocks.NewMockLanguageModel(mockCtrl)
		model.EXPECT().Complete(gomock.Any(), BuildPrompt("The food was cold")).Return(" Negative\n", nil).Times(1)

		analysis := entities.NewAnalysis("req", testObject)
		analysis.Text = "The food was cold"

		require.NoError(t, NewSentimentClassifier(model, logging.NewDiscardLog()).Run(context.Background(), analysis))
		assert.Equal(t, " Negative\n", analysis.Completion)
		assert.Equal(t, "Negative", analysis.Sentiment)
	})

	t.Run("model failure", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		model := mocks.NewMockLanguageModel(mockCtrl)
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("ThrottlingException")).Times(1)

		err := NewSentimentClassifier(model, logging.NewDiscardLog()).Run(context.Background(), entities.NewAnalysis("req", testObject))

		var classificationErr *entities.ClassificationError
		assert.ErrorAs(t, err, &classificationErr)
	})
}

func TestResultRecorder(t *testing.T) {
	t.Run("stores key as received", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		repository := mocks.NewMockSentimentRepository(mockCtrl)
		repository.EXPECT().Save(gomock.Any(), entities.SentimentRecord{File: "reviews/2024/review+1.txt", Sentiment: "positive"}).Return(nil).Times(1)

		analysis := entities.NewAnalysis("req", testObject)
		analysis.Sentiment = "positive"

		assert.NoError(t, NewResultRecorder(repository).Run(context.Background(), analysis))
	})

	t.Run("write failure", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		repository := mocks.NewMockSentimentRepository(mockCtrl)
		repository.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("ResourceNotFoundException")).Times(1)

		err := NewResultRecorder(repository).Run(context.Background(), entities.NewAnalysis("req", testObject))

		var persistenceErr *entities.PersistenceError
		assert.ErrorAs(t, err, &persistenceErr)
	})
}
