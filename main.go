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

package main

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"log"
	"os"
	"sentiment-sentry/app"
)

func main() {
	controller, stop, err := app.NewHandler(context.Background())
	if err != nil {
		log.Printf("sentiment-sentry failed to start. Err: %s", err)
		os.Exit(1)
	}
	defer stop()

	lambda.Start(controller.Handle)
}
