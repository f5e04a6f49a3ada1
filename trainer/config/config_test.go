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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/mlglue/linreg/cmd/dependency/base"
)

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Options: base.Options{
			Console:       false,
			Verbose:       true,
			LogDir:        "/var/log/linreg",
			LogMaxSize:    512,
			LogMaxAge:     5,
			LogMaxBackups: 3,
		},
		TrainFile: "/data/train.csv",
		ModelDir:  "/data/model",
	}

	trainerConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/trainer.yaml")
	if err := yaml.Unmarshal(contentYAML, &trainerConfigYAML); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(config, trainerConfigYAML)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "trainer requires parameter trainFile",
			config: New(),
			mock: func(cfg *Config) {
				cfg.TrainFile = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "trainer requires parameter trainFile")
			},
		},
		{
			name:   "trainer requires parameter modelDir",
			config: New(),
			mock: func(cfg *Config) {
				cfg.ModelDir = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "trainer requires parameter modelDir")
			},
		},
		{
			name:   "trainer requires parameter logDir",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Console = false
				cfg.LogDir = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "trainer requires parameter logDir")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}

func TestConfig_New(t *testing.T) {
	assert := assert.New(t)
	cfg := New()
	assert.Equal(DefaultTrainFile, cfg.TrainFile)
	assert.Equal(DefaultModelDir, cfg.ModelDir)
	assert.True(cfg.Console)
}
