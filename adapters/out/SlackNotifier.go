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
	"fmt"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"net/http"
	"sentiment-sentry/domain/entities"
)

const slackUsername = "sentiment-sentry"

type SlackNotifier struct {
	webhook    string
	channelID  string
	httpClient *http.Client
}

func NewSlackNotifier(webhook, channelID string, httpClient *http.Client) *SlackNotifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &SlackNotifier{webhook: webhook, channelID: channelID, httpClient: httpClient}
}

func (s *SlackNotifier) Notify(ctx context.Context, alert entities.Alert) error {
	msg := slack.WebhookMessage{
		Username: slackUsername,
		Channel:  s.channelID,
		Text:     fmt.Sprintf("*%s*\n%s", alert.Subject, alert.Message),
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhook, s.httpClient, &msg); err != nil {
		return errors.Wrap(err, "slack webhook failed")
	}

	return nil
}
