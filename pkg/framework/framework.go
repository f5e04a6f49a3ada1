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

// Package framework describes the managed scikit-learn framework containers
// used for training and hosting.
package framework

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
)

const (
	// DefaultVersion is the default scikit-learn framework version.
	DefaultVersion = "0.23-1"

	// DefaultEntryPoint is the default user script run by the container.
	DefaultEntryPoint = "train.py"

	// DefaultInstanceType is the default instance type of training and hosting.
	DefaultInstanceType = "ml.m5.large"

	// DefaultInstanceCount is the default instance count of training and hosting.
	DefaultInstanceCount = 1

	// DefaultLogLevel is the container log level, python logging.INFO.
	DefaultLogLevel = 20
)

const (
	repository = "sagemaker-scikit-learn"

	// maxNameLength is the maximum length of job, model and endpoint names.
	maxNameLength = 63

	// timestampLayout is the name suffix layout without milliseconds.
	timestampLayout = "2006-01-02-15-04-05"
)

// Versions are the supported framework versions.
var Versions = []string{"0.20.0", "0.23-1", "1.0-1", "1.2-1"}

// accounts are the registry accounts hosting the framework images.
var accounts = map[string]string{
	"ap-northeast-1": "354813040037",
	"ap-northeast-2": "366743142698",
	"ap-south-1":     "720646828776",
	"ap-southeast-1": "121021644041",
	"ap-southeast-2": "783357654285",
	"ca-central-1":   "341280168497",
	"eu-central-1":   "492215442770",
	"eu-north-1":     "662702820516",
	"eu-west-1":      "141502667606",
	"eu-west-2":      "764974769150",
	"eu-west-3":      "659782779980",
	"sa-east-1":      "737474898029",
	"us-east-1":      "683313688378",
	"us-east-2":      "257758044811",
	"us-west-1":      "746614075791",
	"us-west-2":      "246618743249",
}

// ImageURI returns the framework image of version in region.
func ImageURI(version, region string) (string, error) {
	if !isSupportedVersion(version) {
		return "", fmt.Errorf("unsupported framework version %q, supported versions are %v", version, Versions)
	}

	account, ok := accounts[region]
	if !ok {
		return "", fmt.Errorf("no framework image in region %q", region)
	}

	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com/%s:%s-cpu-py3", account, region, repository, version), nil
}

func isSupportedVersion(version string) bool {
	for _, v := range Versions {
		if v == version {
			return true
		}
	}

	return false
}

// Program is the user script the container runs.
type Program struct {
	// EntryPoint is the script file name inside the submit directory.
	EntryPoint string

	// SubmitDirectory is the object url of the source tarball.
	SubmitDirectory string

	// Region is the region of the job.
	Region string

	// LogLevel is the container log level.
	LogLevel int
}

// Hyperparameters returns the program as training hyperparameters. Values
// are json encoded, the container decodes them before use.
func (p *Program) Hyperparameters() (map[string]*string, error) {
	values := map[string]any{
		"sagemaker_program":             p.EntryPoint,
		"sagemaker_region":              p.Region,
		"sagemaker_container_log_level": p.LogLevel,
	}
	if p.SubmitDirectory != "" {
		values["sagemaker_submit_directory"] = p.SubmitDirectory
	}

	hyperparameters := make(map[string]*string, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		hyperparameters[k] = aws.String(string(b))
	}

	return hyperparameters, nil
}

// Environment returns the program as hosting container environment.
func (p *Program) Environment() map[string]*string {
	env := map[string]string{
		"SAGEMAKER_PROGRAM":             p.EntryPoint,
		"SAGEMAKER_REGION":              p.Region,
		"SAGEMAKER_CONTAINER_LOG_LEVEL": strconv.Itoa(p.LogLevel),
	}
	if p.SubmitDirectory != "" {
		env["SAGEMAKER_SUBMIT_DIRECTORY"] = p.SubmitDirectory
	}

	return aws.StringMap(env)
}

// Name returns a unique resource name from base and the utc time,
// like sagemaker-scikit-learn-2024-01-02-03-04-05-678.
func Name(base string, t time.Time) string {
	t = t.UTC()
	suffix := fmt.Sprintf("%s-%03d", t.Format(timestampLayout), t.Nanosecond()/int(time.Millisecond))

	if max := maxNameLength - len(suffix) - 1; len(base) > max {
		base = base[:max]
	}

	return base + "-" + suffix
}
