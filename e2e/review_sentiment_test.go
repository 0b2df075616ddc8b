//go:build e2e

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

package e2e

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/golang/mock/gomock"
	"net/http"
	adapterentities "sentiment-sentry/adapters/entities"
	adaptersin "sentiment-sentry/adapters/in"
	"sentiment-sentry/app"
	"sentiment-sentry/config"
	"sentiment-sentry/logging"
	"sentiment-sentry/mocks"
	"sentiment-sentry/pkg/awsutils"
)

const eventTemplate = `{"Records":[{"eventSource":"aws:s3","awsRegion":"us-east-1","eventName":"ObjectCreated:Put",
"s3":{"bucket":{"name":"%s"},"object":{"key":"%s"}}}]}`

// newController runs the deployed wiring against localstack with a canned model answer.
func (suite *E2E) newController(mockCtrl *gomock.Controller, completion string) *adaptersin.EventController {
	appConfig, err := config.LoadConfig()
	suite.Require().NoError(err)

	invoker := mocks.NewMockModelInvoker(mockCtrl)
	invoker.EXPECT().InvokeModelWithContext(gomock.Any(), gomock.Any()).
		Return(&bedrockruntime.InvokeModelOutput{Body: []byte(fmt.Sprintf(`{"completion":%q,"stop_reason":"stop_sequence"}`, completion))}, nil).
		AnyTimes()

	return app.NewController(appConfig, logging.NewDiscardLog(), suite.awsSession, awsutils.NewBedrockWithClient(invoker))
}

func (suite *E2E) handle(controller *adaptersin.EventController, key string) adapterentities.Response {
	event := []byte(fmt.Sprintf(eventTemplate, suite.bucketName, key))

	response, err := controller.Handle(context.Background(), event)
	suite.Require().NoError(err)

	return response
}

func (suite *E2E) storedSentiment(ctx context.Context, file string) (adapterentities.SentimentItem, bool) {
	output, err := suite.dynamoDBClient.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(suite.tableName),
		Key:       map[string]*dynamodb.AttributeValue{"File": {S: aws.String(file)}},
	})
	suite.Require().NoError(err)

	if output.Item == nil {
		return adapterentities.SentimentItem{}, false
	}

	var item adapterentities.SentimentItem
	suite.Require().NoError(dynamodbattribute.UnmarshalMap(output.Item, &item))

	return item, true
}

func (suite *E2E) receiveAlerts(ctx context.Context) []string {
	output, err := suite.sqsClient.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(suite.queueURL),
		MaxNumberOfMessages: aws.Int64(10),
		WaitTimeSeconds:     aws.Int64(5),
	})
	suite.Require().NoError(err)

	var alerts []string
	for _, message := range output.Messages {
		alerts = append(alerts, aws.StringValue(message.Body))
	}

	return alerts
}

func (suite *E2E) TestNegativeReviewIsStoredAndPublished() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()

	suite.uploadReview(ctx, "reviews/cold food.txt", "The food arrived cold and the driver was rude.")

	response := suite.handle(suite.newController(mockCtrl, " Negative"), "reviews/cold+food.txt")

	suite.Equal(http.StatusOK, response.StatusCode)
	suite.Equal("Processed reviews/cold+food.txt with sentiment: Negative", response.Body)

	item, found := suite.storedSentiment(ctx, "reviews/cold+food.txt")
	suite.Require().True(found)
	suite.Equal("Negative", item.Sentiment)

	suite.Equal([]string{"Negative sentiment detected in file: reviews/cold+food.txt"}, suite.receiveAlerts(ctx))
}

func (suite *E2E) TestPositiveReviewIsStoredWithoutAlert() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()

	suite.uploadReview(ctx, "reviews/great.txt", "Fast delivery, great taste.")

	response := suite.handle(suite.newController(mockCtrl, "positive"), "reviews/great.txt")

	suite.Equal(http.StatusOK, response.StatusCode)

	item, found := suite.storedSentiment(ctx, "reviews/great.txt")
	suite.Require().True(found)
	suite.Equal("positive", item.Sentiment)

	suite.Empty(suite.receiveAlerts(ctx))
}

func (suite *E2E) TestMissingObjectIsNotRecorded() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()

	response := suite.handle(suite.newController(mockCtrl, "negative"), "reviews/never-uploaded.txt")

	suite.Equal(http.StatusInternalServerError, response.StatusCode)
	suite.Equal("Failed to read file from S3.", response.Body)

	_, found := suite.storedSentiment(ctx, "reviews/never-uploaded.txt")
	suite.False(found)
	suite.Empty(suite.receiveAlerts(ctx))
}
