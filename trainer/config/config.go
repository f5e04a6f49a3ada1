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

	"github.com/mlglue/linreg/cmd/dependency/base"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// TrainFile is the csv file of training records.
	TrainFile string `yaml:"trainFile" mapstructure:"trainFile"`

	// ModelDir is the directory the model artifact is written to.
	ModelDir string `yaml:"modelDir" mapstructure:"modelDir"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options:   base.NewOptions(),
		TrainFile: DefaultTrainFile,
		ModelDir:  DefaultModelDir,
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.TrainFile == "" {
		return errors.New("trainer requires parameter trainFile")
	}

	if cfg.ModelDir == "" {
		return errors.New("trainer requires parameter modelDir")
	}

	if !cfg.Console && cfg.LogDir == "" {
		return errors.New("trainer requires parameter logDir")
	}

	return nil
}
