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

package mocks

import (
	"context"
	"sentiment-sentry/domain/entities"
)

// SpyJob records its calls and optionally fails, panics or edits the analysis.
type SpyJob struct {
	JobName string
	Err     error
	Panic   interface{}
	Effect  func(analysis *entities.Analysis)
	Counter map[string]int
	Order   *[]string
}

func NewSpyJob(name string, order *[]string) *SpyJob {
	return &SpyJob{JobName: name, Counter: map[string]int{}, Order: order}
}

func (s *SpyJob) Run(_ context.Context, analysis *entities.Analysis) error {
	s.Counter["Run"]++

	if s.Order != nil {
		*s.Order = append(*s.Order, s.JobName)
	}

	if s.Panic != nil {
		panic(s.Panic)
	}

	if s.Effect != nil {
		s.Effect(analysis)
	}

	return s.Err
}

func (s *SpyJob) Name() string {
	s.Counter["Name"]++
	return s.JobName
}
