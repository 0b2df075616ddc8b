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
	"github.com/pkg/errors"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/pkg/awsutils"
)

var ErrNoTopic = errors.New("no alert topic configured")

type SNSNotifier struct {
	sns      *awsutils.SNS
	topicArn string
}

func NewSNSNotifier(sns *awsutils.SNS, topicArn string) *SNSNotifier {
	return &SNSNotifier{sns: sns, topicArn: topicArn}
}

func (s *SNSNotifier) Notify(ctx context.Context, alert entities.Alert) error {
	if s.topicArn == "" {
		return ErrNoTopic
	}

	_, err := s.sns.PublishToTopic(ctx, s.topicArn, alert.Subject, alert.Message)
	if err != nil {
		return errors.Wrapf(err, "publish to %s failed", s.topicArn)
	}

	return nil
}
