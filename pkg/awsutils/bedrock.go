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

package awsutils

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
)

const jsonContentType = "application/json"

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_model_invoker.go -package=mocks -source=bedrock.go
type ModelInvoker interface {
	InvokeModelWithContext(ctx aws.Context, input *bedrockruntime.InvokeModelInput, opts ...request.Option) (*bedrockruntime.InvokeModelOutput, error)
}

type Bedrock struct {
	svc ModelInvoker
}

func NewBedrock(awsSession *session.Session, awsConfig *aws.Config) *Bedrock {
	return &Bedrock{svc: bedrockruntime.New(awsSession, awsConfig)}
}

func NewBedrockWithClient(svc ModelInvoker) *Bedrock {
	return &Bedrock{svc: svc}
}

// InvokeModel sends a JSON body to modelID and returns the raw JSON response body.
func (b *Bedrock) InvokeModel(ctx aws.Context, modelID string, body []byte) ([]byte, error) {
	output, err := b.svc.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String(jsonContentType),
		Accept:      aws.String(jsonContentType),
	})
	if err != nil {
		return nil, err
	}

	return output.Body, nil
}
