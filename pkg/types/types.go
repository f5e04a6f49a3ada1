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

package types

const (
	// TrainerName is name of trainer.
	TrainerName = "trainer"

	// SubmitterName is name of training job submitter.
	SubmitterName = "submitter"

	// DeployerName is name of deployer.
	DeployerName = "deployer"

	// ServerName is name of model server.
	ServerName = "server"

	// InferenceName is name of inference function.
	InferenceName = "inference"
)

const (
	// ContentTypeJSON is the content type of json payloads.
	ContentTypeJSON = "application/json"

	// ContentTypeCSV is the content type of csv payloads.
	ContentTypeCSV = "text/csv"
)

const (
	// MetricsNamespace is namespace of metrics.
	MetricsNamespace = "linreg"

	// ServerMetricsName is name of model server metrics.
	ServerMetricsName = "server"
)
