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
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/pkg/errors"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_item_putter.go -package=mocks -source=dynamodb.go
type ItemPutter interface {
	PutItemWithContext(ctx aws.Context, input *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error)
}

type DynamoDB struct {
	svc ItemPutter
}

func NewDynamoDB(awsSession *session.Session, awsConfig *aws.Config) *DynamoDB {
	return &DynamoDB{svc: dynamodb.New(awsSession, awsConfig)}
}

func NewDynamoDBWithClient(svc ItemPutter) *DynamoDB {
	return &DynamoDB{svc: svc}
}

// PutItem marshals item with its dynamodbav tags and writes it unconditionally,
// replacing any existing item with the same key.
func (d *DynamoDB) PutItem(ctx aws.Context, table string, item interface{}) error {
	attributes, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		return errors.Wrap(err, "failed to marshal item")
	}

	_, err = d.svc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      attributes,
	})

	return err
}
