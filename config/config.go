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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

const (
	defaultModelID     = "anthropic.claude-instant-v1"
	defaultMaxTokens   = 30
	defaultTemperature = 0
)

// Table and topic are not validated here. A missing value only fails the stage that
// needs it.
type AppConfig struct {
	Aws        AWS
	Classifier Classifier
	Storage    Storage
	Alert      Alert
	Telemetry  Telemetry
}

type AWS struct {
	Region   string // Region of the model and the sentiment table, session default when empty
	Endpoint string // Custom endpoint for every client, eg. localstack
}

type Classifier struct {
	ModelID     string  `validate:"required"`
	MaxTokens   int     `validate:"gt=0"`
	Temperature float64 `validate:"gte=0,lte=1"`
}

type Storage struct {
	Table string
}

type Alert struct {
	TopicArn string
	Subject  string `validate:"required"`
	Slack    Slack
}

type Slack struct {
	Webhook string
	Channel string
}

type Telemetry struct {
	DebugLog bool
	Metrics  bool
	Tracing  bool
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Classifier: Classifier{
			ModelID:     defaultModelID,
			MaxTokens:   defaultMaxTokens,
			Temperature: defaultTemperature,
		},
		Alert: Alert{
			Subject: "Sentiment Alert",
		},
		Telemetry: Telemetry{
			Metrics: true,
		},
	}
}

// Environment names used by the deployed function since before the config file existed.
// Each key still accepts its SECTION_KEY form as a fallback.
//
//nolint:gochecknoglobals
var legacyEnv = map[string][]string{
	"aws/region":     {"REGION", "AWS_REGION"},
	"storage/table":  {"DYNAMODB_TABLE", "STORAGE_TABLE"},
	"alert/topicarn": {"SNS_TOPIC_ARN", "ALERT_TOPICARN"},
}

func validateConfig(config AppConfig) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration. %w", err)
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.AddConfigPath(os.Getenv("CONFIG_DIR"))
	v.AddConfigPath("../resources/")
	v.AddConfigPath("./resources/")
	v.AddConfigPath(".")
	v.AddConfigPath("/var/task/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	// Functions are usually deployed without a config file, env variables are enough
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))

	for key, names := range legacyEnv {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return AppConfig{}, err
		}
	}

	// refresh configuration with all merged values
	config := AppConfig{}
	err = v.Unmarshal(&config)

	if err != nil {
		return AppConfig{}, err
	}

	err = validateConfig(config)
	if err != nil {
		return AppConfig{}, err
	}

	return config, nil
}
