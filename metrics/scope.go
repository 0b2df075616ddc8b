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

package metrics

import (
	"github.com/uber-go/tally/v4"
	"io"
	"sentiment-sentry/logging"
	"time"
)

const applicationName = "sentiment_classifier"

const (
	Invocations   = "invocations"
	StageFailures = "stage_failures"
	StageLatency  = "stage_latency"
	AlertsSent    = "alerts_sent"
)

// ScopeFactory builds the root scope of one invocation. Closing it reports everything
// recorded so far.
type ScopeFactory func() (tally.Scope, io.Closer)

// NewLogScope reports through logger when closed. A Lambda freezes between invocations,
// so nothing reports on an interval.
func NewLogScope(logger logging.Logger) (tally.Scope, io.Closer) {
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:    applicationName,
		Separator: "_",
		Tags:      map[string]string{},
		Reporter:  NewLogReporter(logger),
	}, 0)
}

func NewNoopScope() (tally.Scope, io.Closer) {
	return tally.NewRootScope(tally.ScopeOptions{Reporter: tally.NullStatsReporter}, 0)
}

func NewScopeFactory(enabled bool, logger logging.Logger) ScopeFactory {
	if !enabled {
		return NewNoopScope
	}

	return func() (tally.Scope, io.Closer) {
		return NewLogScope(logger)
	}
}

type LogReporter struct {
	logger logging.Logger
}

func NewLogReporter(logger logging.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool   { return true }

func (r *LogReporter) Capabilities() tally.Capabilities {
	return capabilities{}
}

func (r *LogReporter) Flush() {}

func (r *LogReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.logger.Infow("metric", "type", "counter", "name", name, "tags", tags, "value", value)
}

func (r *LogReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.logger.Infow("metric", "type", "gauge", "name", name, "tags", tags, "value", value)
}

func (r *LogReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.logger.Infow("metric", "type", "timer", "name", name, "tags", tags, "value_ms", interval.Milliseconds())
}

func (r *LogReporter) ReportHistogramValueSamples(name string, tags map[string]string, _ tally.Buckets, bucketLowerBound, bucketUpperBound float64, samples int64) {
	r.logger.Infow("metric", "type", "histogram", "name", name, "tags", tags,
		"lower", bucketLowerBound, "upper", bucketUpperBound, "samples", samples)
}

func (r *LogReporter) ReportHistogramDurationSamples(name string, tags map[string]string, _ tally.Buckets, bucketLowerBound, bucketUpperBound time.Duration, samples int64) {
	r.logger.Infow("metric", "type", "histogram", "name", name, "tags", tags,
		"lower_ms", bucketLowerBound.Milliseconds(), "upper_ms", bucketUpperBound.Milliseconds(), "samples", samples)
}
