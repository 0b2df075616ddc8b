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
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/pkg/errors"
	"sentiment-sentry/pkg/awsutils"
)

type S3Storage struct {
	svc *awsutils.S3
}

func NewS3Storage(svc *awsutils.S3) *S3Storage {
	return &S3Storage{svc: svc}
}

func (s *S3Storage) Read(ctx context.Context, bucket, key string) ([]byte, error) {
	data, err := s.svc.ReadObject(ctx, bucket, key)
	if err != nil {
		var awsErr awserr.Error
		if errors.As(err, &awsErr) {
			return nil, errors.Wrapf(err, "s3 get object failed with code %s", awsErr.Code())
		}

		return nil, errors.Wrap(err, "s3 get object failed")
	}

	return data, nil
}
