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

package app

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go/aws/session"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"net/http"
	adaptersin "sentiment-sentry/adapters/in"
	adaptersout "sentiment-sentry/adapters/out"
	"sentiment-sentry/config"
	portsout "sentiment-sentry/domain/ports/out"
	"sentiment-sentry/domain/services"
	"sentiment-sentry/domain/services/notification"
	"sentiment-sentry/domain/services/pipeline"
	"sentiment-sentry/logging"
	"sentiment-sentry/metrics"
	"sentiment-sentry/pkg/awsutils"
	"time"
)

const (
	serviceName  = "sentiment-sentry"
	slackTimeout = 10 * time.Second
)

// NewHandler builds everything an invocation needs. It runs once per cold start; the
// returned stop function flushes the tracer.
func NewHandler(_ context.Context) (*adaptersin.EventController, func(), error) {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewZapLogger(appConfig.Telemetry.DebugLog)
	if err != nil {
		return nil, nil, err
	}

	stop := func() { _ = logger.Sync() }

	if appConfig.Telemetry.Tracing {
		tracer.Start(tracer.WithService(serviceName))

		stop = func() {
			tracer.Stop()
			_ = logger.Sync()
		}
	}

	// The session keeps the default region for S3 and SNS. Bedrock and DynamoDB are pinned
	// to the configured region.
	var clients awsutils.Clients
	awsSession, err := clients.Session("", appConfig.Aws.Endpoint, appConfig.Telemetry.Tracing)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize aws client. Error: %w, Endpoint: %s", err, appConfig.Aws.Endpoint)
	}

	bedrock := awsutils.NewBedrock(awsSession, awsutils.RegionalConfig(appConfig.Aws.Region))

	return NewController(appConfig, logger, awsSession, bedrock), stop, nil
}

// NewController wires the pipeline on top of an AWS session. The model client is taken
// apart from the session so it can be pointed elsewhere.
func NewController(appConfig config.AppConfig, logger logging.Logger, awsSession *session.Session, bedrock *awsutils.Bedrock) *adaptersin.EventController {
	regional := awsutils.RegionalConfig(appConfig.Aws.Region)

	storage := adaptersout.NewS3Storage(awsutils.NewS3(awsSession, nil))
	classifier := adaptersout.NewBedrockClassifier(bedrock,
		appConfig.Classifier.ModelID, appConfig.Classifier.MaxTokens, appConfig.Classifier.Temperature)
	repository := adaptersout.NewDynamoSentimentRepository(awsutils.NewDynamoDB(awsSession, regional), appConfig.Storage.Table)

	notifiers := []portsout.Notifier{adaptersout.NewSNSNotifier(awsutils.NewSNS(awsSession, nil), appConfig.Alert.TopicArn)}
	if appConfig.Alert.Slack.Webhook != "" {
		slackClient := &http.Client{Timeout: slackTimeout}
		notifiers = append(notifiers, adaptersout.NewSlackNotifier(appConfig.Alert.Slack.Webhook, appConfig.Alert.Slack.Channel, slackClient))
	}

	// Jobs
	fetcher := services.NewContentFetcher(storage, logger)
	sentimentClassifier := services.NewSentimentClassifier(classifier, logger)
	recorder := services.NewResultRecorder(repository)
	dispatcher := notification.NewAlertDispatcher(notifiers, appConfig.Alert.Subject, logger)

	processor := pipeline.NewPipeline([]pipeline.Job{fetcher, sentimentClassifier, recorder}, []pipeline.Job{dispatcher}, logger)

	logger.Infow("Handler initialized", "pipeline", processor.Name(), "notifiers", dispatcher.Notifiers(),
		"model", appConfig.Classifier.ModelID, "region", appConfig.Aws.Region, "table", appConfig.Storage.Table)

	return adaptersin.NewEventController(processor, metrics.NewScopeFactory(appConfig.Telemetry.Metrics, logger), logger)
}
