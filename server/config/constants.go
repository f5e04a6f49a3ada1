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
	"time"

	"github.com/mlglue/linreg/pkg/unit"
)

const (
	// DefaultServerAddr is the address the managed hosting platform sends
	// health checks and invocations to.
	DefaultServerAddr = ":8080"

	// DefaultModelDir is the directory the model artifact is extracted to.
	DefaultModelDir = "/opt/ml/model"

	// DefaultShutdownTimeout is the default timeout of graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultMaxBodySize is the default limit of invocation body size.
	DefaultMaxBodySize = 6 * unit.MB
)

const (
	// DefaultMetricsAddr is the default address of metrics server.
	DefaultMetricsAddr = ":8000"
)
