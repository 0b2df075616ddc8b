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
	"fmt"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/domain/ports/out"
	"sentiment-sentry/logging"
	"strings"
)

const promptTemplate = "\n\nHuman: What is the sentiment of this text? Respond with 'positive', 'neutral', or 'negative'.\n\n%s\n\nAssistant:"

// BuildPrompt embeds text verbatim in the classification prompt.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

type SentimentClassifier struct {
	model  out.LanguageModel
	logger logging.Logger
}

func NewSentimentClassifier(model out.LanguageModel, logger logging.Logger) *SentimentClassifier {
	return &SentimentClassifier{model: model, logger: logger}
}

func (s *SentimentClassifier) Run(ctx context.Context, analysis *entities.Analysis) error {
	completion, err := s.model.Complete(ctx, BuildPrompt(analysis.Text))
	if err != nil {
		return &entities.ClassificationError{Key: analysis.Object.Key, Err: err}
	}

	analysis.Completion = completion
	analysis.Sentiment = strings.TrimSpace(completion)
	s.logger.Debugw("Text classified", "key", analysis.Object.Key, "sentiment", analysis.Sentiment)

	return nil
}

func (s *SentimentClassifier) Name() string {
	return "classify"
}
