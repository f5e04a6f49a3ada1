/*
 *     Copyright 2024 The Linreg Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"

	"github.com/spf13/viper"
)

const (
	// DefaultEndpointName is the default endpoint invoked by the handler.
	DefaultEndpointName = "sagemaker-scikit-endpoint"

	// EnvEndpointName overrides the endpoint name.
	EnvEndpointName = "INFERENCE_ENDPOINT_NAME"

	// EnvRegion overrides the region of the endpoint.
	EnvRegion = "INFERENCE_REGION"

	// EnvVerbose enables debug logs.
	EnvVerbose = "INFERENCE_VERBOSE"
)

type Config struct {
	// EndpointName is the endpoint invoked by the handler.
	EndpointName string `mapstructure:"endpointName"`

	// Region is the region of the endpoint, the function region is used
	// when it is empty.
	Region string `mapstructure:"region"`

	// Verbose enables debug logs.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads the config from environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("endpointName", DefaultEndpointName)
	v.SetDefault("region", "")
	v.SetDefault("verbose", false)

	for key, env := range map[string]string{
		"endpointName": EnvEndpointName,
		"region":       EnvRegion,
		"verbose":      EnvVerbose,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.EndpointName == "" {
		return errors.New("inference requires parameter endpointName")
	}

	return nil
}
