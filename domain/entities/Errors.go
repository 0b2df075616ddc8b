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

package entities

import (
	"errors"
	"fmt"
	"net/http"
)

const internalErrorBody = "Internal error."

// StatusError is implemented by every error that aborts an invocation.
type StatusError interface {
	error
	StatusCode() int
	Body() string
}

type MalformedEventError struct {
	Reason string
	Err    error
}

func (e *MalformedEventError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed trigger event: %s", e.Reason)
	}

	return fmt.Sprintf("malformed trigger event: %s. %s", e.Reason, e.Err)
}

func (e *MalformedEventError) Unwrap() error   { return e.Err }
func (e *MalformedEventError) StatusCode() int { return http.StatusBadRequest }
func (e *MalformedEventError) Body() string    { return "Invalid S3 trigger event." }

type FetchError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to read s3://%s/%s. %s", e.Bucket, e.Key, e.Err)
}

func (e *FetchError) Unwrap() error   { return e.Err }
func (e *FetchError) StatusCode() int { return http.StatusInternalServerError }
func (e *FetchError) Body() string    { return "Failed to read file from S3." }

type ClassificationError struct {
	Key string
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("failed to classify %s. %s", e.Key, e.Err)
}

func (e *ClassificationError) Unwrap() error   { return e.Err }
func (e *ClassificationError) StatusCode() int { return http.StatusInternalServerError }
func (e *ClassificationError) Body() string    { return "Failed to get response from Bedrock." }

type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to store sentiment for %s. %s", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error   { return e.Err }
func (e *PersistenceError) StatusCode() int { return http.StatusInternalServerError }
func (e *PersistenceError) Body() string    { return "Failed to write to DynamoDB." }

// AlertError never aborts an invocation, so it carries no status.
type AlertError struct {
	Key string
	Err error
}

func (e *AlertError) Error() string {
	return fmt.Sprintf("failed to send alert for %s. %s", e.Key, e.Err)
}

func (e *AlertError) Unwrap() error { return e.Err }

func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode()
	}

	return http.StatusInternalServerError
}

func ResponseBody(err error) string {
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body()
	}

	return internalErrorBody
}
