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

package notification

import (
	"context"
	"go.uber.org/multierr"
	"reflect"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/domain/ports/out"
	"sentiment-sentry/logging"
	"strings"
)

// AlertDispatcher sends a negative sentiment alert to every notifier. A failing notifier
// does not prevent the remaining ones from running.
type AlertDispatcher struct {
	notifiers []out.Notifier
	subject   string
	logger    logging.Logger
}

func NewAlertDispatcher(notifiers []out.Notifier, subject string, logger logging.Logger) *AlertDispatcher {
	return &AlertDispatcher{notifiers: notifiers, subject: subject, logger: logger}
}

func (a *AlertDispatcher) Run(ctx context.Context, analysis *entities.Analysis) error {
	if !analysis.IsNegative() {
		return nil
	}

	alert := entities.NewNegativeSentimentAlert(a.subject, analysis.Object.Key)

	var errs error

	for _, notifier := range a.notifiers {
		a.logger.Debugw("Sending alert", "notifier", notifierName(notifier))

		if err := notifier.Notify(ctx, alert); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		analysis.Alerted = true
	}

	if errs != nil {
		return &entities.AlertError{Key: analysis.Object.Key, Err: errs}
	}

	return nil
}

func (a *AlertDispatcher) Name() string {
	return "alert"
}

func (a *AlertDispatcher) Notifiers() string {
	var names []string
	for _, notifier := range a.notifiers {
		names = append(names, notifierName(notifier))
	}

	return strings.Join(names, ", ")
}

func notifierName(notifier out.Notifier) string {
	t := reflect.TypeOf(notifier)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Name()
}
