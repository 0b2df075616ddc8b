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
	"encoding/json"
	"github.com/pkg/errors"
	"sentiment-sentry/adapters/entities"
	"sentiment-sentry/pkg/awsutils"
)

var ErrNoCompletion = errors.New("model response has no completion field")

// BedrockClassifier talks to Anthropic text-completion models hosted on Bedrock.
type BedrockClassifier struct {
	bedrock     *awsutils.Bedrock
	modelID     string
	maxTokens   int
	temperature float64
}

func NewBedrockClassifier(bedrock *awsutils.Bedrock, modelID string, maxTokens int, temperature float64) *BedrockClassifier {
	return &BedrockClassifier{bedrock: bedrock, modelID: modelID, maxTokens: maxTokens, temperature: temperature}
}

func (b *BedrockClassifier) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(entities.CompletionRequest{
		Prompt:            prompt,
		MaxTokensToSample: b.maxTokens,
		Temperature:       b.temperature,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode request for bedrock")
	}

	raw, err := b.bedrock.InvokeModel(ctx, b.modelID, body)
	if err != nil {
		return "", errors.Wrapf(err, "request to bedrock model %s failed", b.modelID)
	}

	var response entities.CompletionResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return "", errors.Wrapf(err, "failed to decode bedrock response. body: %s", raw)
	}

	if response.Completion == nil {
		return "", ErrNoCompletion
	}

	return *response.Completion, nil
}
