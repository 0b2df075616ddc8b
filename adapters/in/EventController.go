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

package in

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/uber-go/tally/v4"
	adapterentities "sentiment-sentry/adapters/entities"
	"sentiment-sentry/common"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/logging"
	"sentiment-sentry/metrics"
)

type Processor interface {
	Process(ctx context.Context, scope tally.Scope, analysis *entities.Analysis) error
}

// EventController is the Lambda entry point. It always answers with a response and a
// nil error, so failures never trigger the runtime's own retry handling.
type EventController struct {
	processor Processor
	scopes    metrics.ScopeFactory
	logger    logging.Logger
}

func NewEventController(processor Processor, scopes metrics.ScopeFactory, logger logging.Logger) *EventController {
	return &EventController{processor: processor, scopes: scopes, logger: logger}
}

func (e *EventController) Handle(ctx context.Context, event json.RawMessage) (response adapterentities.Response, _ error) {
	scope, closer := e.scopes()
	requestID := common.RequestID(ctx)
	logger := logging.With(e.logger, "request_id", requestID)

	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warnw("Failed to report metrics", "err", err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			panicErr := fmt.Errorf("%v", r)
			logger.Errorw("Panic catch during event handling", "err", panicErr)
			response = adapterentities.NewResponse(entities.StatusCode(panicErr), entities.ResponseBody(panicErr))
		}
	}()

	scope.Counter(metrics.Invocations).Inc(1)
	logger.Infow("Received event", "event", string(event))

	object, err := DecodeEvent(event)
	if err != nil {
		return e.failure(logger, err), nil
	}

	logger = logging.With(logger, "bucket", object.Bucket, "key", object.Key)
	logger.Infow("Processing object")

	analysis := entities.NewAnalysis(requestID, object)
	if err := e.processor.Process(ctx, scope, analysis); err != nil {
		return e.failure(logger, err), nil
	}

	if analysis.Alerted {
		scope.Counter(metrics.AlertsSent).Inc(1)
	}

	logger.Infow("Object processed", "completion", analysis.Completion, "sentiment", analysis.Sentiment, "alerted", analysis.Alerted)

	return adapterentities.NewResponse(entities.StatusCode(nil), analysis.Summary()), nil
}

func (e *EventController) failure(logger logging.Logger, err error) adapterentities.Response {
	status := entities.StatusCode(err)
	logger.Errorw("Failed to process event", "status", status, "err", err)

	return adapterentities.NewResponse(status, entities.ResponseBody(err))
}
