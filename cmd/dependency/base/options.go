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

package base

// Options are the options shared by every command.
type Options struct {
	// Console prints logs to the console instead of log files.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose enables debug level logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// LogDir is the directory of log files.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// LogMaxSize is the maximum size in megabytes of log files before rotation.
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// LogMaxAge is the maximum number of days to retain old log files.
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// LogMaxBackups is the maximum number of old log files to keep.
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`
}

const (
	// DefaultLogDir is the default directory of log files.
	DefaultLogDir = "/var/log/linreg"

	DefaultLogRotateMaxSize    = 1024
	DefaultLogRotateMaxAge     = 7
	DefaultLogRotateMaxBackups = 20
)

// NewOptions returns the default base options.
func NewOptions() Options {
	return Options{
		Console:       true,
		LogDir:        DefaultLogDir,
		LogMaxSize:    DefaultLogRotateMaxSize,
		LogMaxAge:     DefaultLogRotateMaxAge,
		LogMaxBackups: DefaultLogRotateMaxBackups,
	}
}
