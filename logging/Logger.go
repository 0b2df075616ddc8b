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

package logging

import "go.uber.org/zap"

// Logger is the subset of *zap.SugaredLogger used across the service.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Sync() error
}

func NewDiscardLog() Logger {
	return zap.NewNop().Sugar()
}

// With returns a child logger carrying keysAndValues on every entry. Loggers other than
// zap's sugared logger are returned unchanged.
func With(logger Logger, keysAndValues ...interface{}) Logger {
	if sugared, ok := logger.(*zap.SugaredLogger); ok {
		return sugared.With(keysAndValues...)
	}

	return logger
}
