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
	"bytes"
	"context"
	"errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"sentiment-sentry/mocks"
	"testing"
)

func TestReadObjectUsesKeyAsGiven(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	getter := mocks.NewMockObjectGetter(mockCtrl)
	getter.EXPECT().GetObjectWithContext(gomock.Any(), &s3.GetObjectInput{
		Bucket: aws.String("b1"),
		Key:    aws.String("reviews/my review.txt"),
	}).Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte("Terrible service")))}, nil).Times(1)

	data, err := NewS3WithClient(getter).ReadObject(context.Background(), "b1", "reviews/my review.txt")

	require.NoError(t, err)
	assert.Equal(t, "Terrible service", string(data))
}

func TestReadObjectPropagatesErrors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	getter := mocks.NewMockObjectGetter(mockCtrl)
	getter.EXPECT().GetObjectWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("NoSuchKey")).Times(1)

	_, err := NewS3WithClient(getter).ReadObject(context.Background(), "b1", "missing.txt")
	assert.EqualError(t, err, "NoSuchKey")
}

func TestPublishToTopic(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	publisher := mocks.NewMockTopicPublisher(mockCtrl)
	publisher.EXPECT().PublishWithContext(gomock.Any(), &sns.PublishInput{
		TopicArn: aws.String("arn:aws:sns:us-east-1:000000000100:alerts"),
		Subject:  aws.String("Sentiment Alert"),
		Message:  aws.String("Negative sentiment detected in file: reviews/1.txt"),
	}).Return(&sns.PublishOutput{MessageId: aws.String("message-id")}, nil).Times(1)

	id, err := NewSNSWithClient(publisher).PublishToTopic(context.Background(), "arn:aws:sns:us-east-1:000000000100:alerts",
		"Sentiment Alert", "Negative sentiment detected in file: reviews/1.txt")

	require.NoError(t, err)
	assert.Equal(t, "message-id", id)
}

func TestPutItemMarshalsAttributes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	item := struct {
		File      string `dynamodbav:"File"`
		Sentiment string `dynamodbav:"Sentiment"`
	}{File: "reviews/1.txt", Sentiment: "negative"}

	putter := mocks.NewMockItemPutter(mockCtrl)
	putter.EXPECT().PutItemWithContext(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ aws.Context, input *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "SentimentResults", aws.StringValue(input.TableName))
			assert.Equal(t, "reviews/1.txt", aws.StringValue(input.Item["File"].S))
			assert.Equal(t, "negative", aws.StringValue(input.Item["Sentiment"].S))
			assert.Nil(t, input.ConditionExpression)
			return &dynamodb.PutItemOutput{}, nil
		}).Times(1)

	assert.NoError(t, NewDynamoDBWithClient(putter).PutItem(context.Background(), "SentimentResults", item))
}

func TestInvokeModel(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	body := []byte(`{"prompt":"hi"}`)
	invoker := mocks.NewMockModelInvoker(mockCtrl)
	invoker.EXPECT().InvokeModelWithContext(gomock.Any(), &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String("anthropic.claude-instant-v1"),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	}).Return(&bedrockruntime.InvokeModelOutput{Body: []byte(`{"completion":" positive"}`)}, nil).Times(1)

	response, err := NewBedrockWithClient(invoker).InvokeModel(context.Background(), "anthropic.claude-instant-v1", body)

	require.NoError(t, err)
	assert.JSONEq(t, `{"completion":" positive"}`, string(response))
}

func TestRegionalConfig(t *testing.T) {
	assert.Nil(t, RegionalConfig(""))
	assert.Equal(t, "eu-west-1", aws.StringValue(RegionalConfig("eu-west-1").Region))
}
