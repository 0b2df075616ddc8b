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

package awsutils

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	"io"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_object_getter.go -package=mocks -source=s3.go
type ObjectGetter interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
}

type S3 struct {
	svc ObjectGetter
}

func NewS3(awsSession *session.Session, awsConfig *aws.Config) *S3 {
	return &S3{svc: s3.New(awsSession, awsConfig)}
}

func NewS3WithClient(svc ObjectGetter) *S3 {
	return &S3{svc: svc}
}

// ReadObject downloads a whole object in a single GetObject call. item must already be
// URL decoded.
func (s *S3) ReadObject(ctx aws.Context, bucket, item string) ([]byte, error) {
	object, err := s.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(item),
	})
	if err != nil {
		return nil, err
	}
	defer object.Body.Close()

	data, err := io.ReadAll(object.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read object body")
	}

	return data, nil
}
