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

package pipeline

import (
	"context"
	"fmt"
	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"sentiment-sentry/domain/entities"
	"sentiment-sentry/logging"
	"sentiment-sentry/metrics"
	"strings"
)

const spanName = "sentiment.stage"

type Job interface {
	Run(ctx context.Context, analysis *entities.Analysis) error
	Name() string
}

// Pipeline runs its jobs in order and stops at the first failure. Best effort jobs run
// afterwards and their failures are only logged.
type Pipeline struct {
	jobs       []Job
	bestEffort []Job
	logger     logging.Logger
}

func NewPipeline(jobs []Job, bestEffort []Job, logger logging.Logger) *Pipeline {
	return &Pipeline{jobs: jobs, bestEffort: bestEffort, logger: logger}
}

func (p *Pipeline) Process(ctx context.Context, scope tally.Scope, analysis *entities.Analysis) error {
	for _, job := range p.jobs {
		if err := p.run(ctx, scope, job, analysis); err != nil {
			return err
		}
	}

	for _, job := range p.bestEffort {
		if err := p.run(ctx, scope, job, analysis); err != nil {
			p.logger.Warnw("Best effort job failed", "job", job.Name(), "key", analysis.Object.Key, "err", err)
		}
	}

	return nil
}

func (p *Pipeline) run(ctx context.Context, scope tally.Scope, job Job, analysis *entities.Analysis) (err error) {
	name := job.Name()
	stageScope := scope.Tagged(map[string]string{"stage": name})
	span, ctx := tracer.StartSpanFromContext(ctx, spanName, tracer.ResourceName(name))
	stopwatch := stageScope.Timer(metrics.StageLatency).Start()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", name, r)
			p.logger.Errorw("Panic catch during job execution", "job", name, "err", err)
		}

		stopwatch.Stop()

		if err != nil {
			stageScope.Counter(metrics.StageFailures).Inc(1)
		}

		span.Finish(tracer.WithError(err))
	}()

	p.logger.Debugw("Running job", "job", name)

	return job.Run(ctx, analysis)
}

func (p *Pipeline) Name() string {
	var jobs []string
	for _, job := range append(append([]Job{}, p.jobs...), p.bestEffort...) {
		jobs = append(jobs, job.Name())
	}

	return "Pipeline with jobs: " + strings.Join(jobs, ", ")
}
