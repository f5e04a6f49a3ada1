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
	"time"

	"github.com/mlglue/linreg/cmd/dependency/base"
	"github.com/mlglue/linreg/pkg/unit"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// Addr is the listen address of health checks and invocations.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// ModelDir is the directory of the model artifact.
	ModelDir string `yaml:"modelDir" mapstructure:"modelDir"`

	// MaxBodySize is the limit of invocation body size, like 6MB.
	MaxBodySize unit.Bytes `yaml:"maxBodySize" mapstructure:"maxBodySize"`

	// ShutdownTimeout is the timeout of graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options: base.NewOptions(),
		Server: ServerConfig{
			Addr:            DefaultServerAddr,
			ModelDir:        DefaultModelDir,
			MaxBodySize:     DefaultMaxBodySize,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.Addr == "" {
		return errors.New("server requires parameter addr")
	}

	if cfg.Server.ModelDir == "" {
		return errors.New("server requires parameter modelDir")
	}

	if cfg.Server.MaxBodySize <= 0 {
		return errors.New("server requires parameter maxBodySize")
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("server requires parameter shutdownTimeout")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	if !cfg.Console && cfg.LogDir == "" {
		return errors.New("server requires parameter logDir")
	}

	return nil
}
