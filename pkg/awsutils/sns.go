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
	"github.com/aws/aws-sdk-go/service/sns"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_topic_publisher.go -package=mocks -source=sns.go
type TopicPublisher interface {
	PublishWithContext(ctx aws.Context, input *sns.PublishInput, opts ...request.Option) (*sns.PublishOutput, error)
}

type SNS struct {
	svc TopicPublisher
}

func NewSNS(awsSession *session.Session, awsConfig *aws.Config) *SNS {
	return &SNS{svc: sns.New(awsSession, awsConfig)}
}

func NewSNSWithClient(svc TopicPublisher) *SNS {
	return &SNS{svc: svc}
}

func (s *SNS) PublishToTopic(ctx aws.Context, topicArn, subject, message string) (string, error) {
	params := sns.PublishInput{
		TopicArn: aws.String(topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	output, err := s.svc.PublishWithContext(ctx, &params)
	if err != nil {
		return "", err
	}

	return aws.StringValue(output.MessageId), nil
}
