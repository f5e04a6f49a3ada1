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

package logger

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mlglue/linreg/pkg/types"
)

type logInitMeta struct {
	fileName             string
	setSugaredLoggerFunc func(*zap.SugaredLogger)
}

func InitTrainer(verbose, console bool, dir string, rotate LogRotateConfig) error {
	return initCommand(types.TrainerName, verbose, console, dir, rotate)
}

func InitSubmitter(verbose, console bool, dir string, rotate LogRotateConfig) error {
	return initCommand(types.SubmitterName, verbose, console, dir, rotate)
}

func InitDeployer(verbose, console bool, dir string, rotate LogRotateConfig) error {
	return initCommand(types.DeployerName, verbose, console, dir, rotate)
}

func InitServer(verbose, console bool, dir string, rotate LogRotateConfig) error {
	if console {
		return createConsoleLogger(verbose)
	}

	var meta = []logInitMeta{
		{
			fileName:             CoreLogFileName,
			setSugaredLoggerFunc: SetCoreLogger,
		},
		{
			fileName:             GinLogFileName,
			setSugaredLoggerFunc: SetGinLogger,
		},
	}

	return createFileLogger(verbose, meta, filepath.Join(dir, types.ServerName), rotate)
}

// InitInference always logs to the console, the serverless runtime
// collects stdout and stderr.
func InitInference(verbose bool) error {
	return createConsoleLogger(verbose)
}

func initCommand(name string, verbose, console bool, dir string, rotate LogRotateConfig) error {
	if console {
		return createConsoleLogger(verbose)
	}

	var meta = []logInitMeta{
		{
			fileName:             CoreLogFileName,
			setSugaredLoggerFunc: SetCoreLogger,
		},
		{
			fileName:             AWSLogFileName,
			setSugaredLoggerFunc: SetAWSLogger,
		},
	}

	return createFileLogger(verbose, meta, filepath.Join(dir, name), rotate)
}

func createConsoleLogger(verbose bool) error {
	levels = nil
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	sugar := log.Sugar()
	SetCoreLogger(sugar)
	SetAWSLogger(sugar)
	SetGinLogger(sugar)
	levels = append(levels, config.Level)
	return nil
}

func createFileLogger(verbose bool, meta []logInitMeta, logDir string, rotate LogRotateConfig) error {
	levels = nil
	for _, m := range meta {
		log, level, err := CreateLogger(filepath.Join(logDir, m.fileName), false, verbose, rotate)
		if err != nil {
			return err
		}

		m.setSugaredLoggerFunc(log.Sugar())
		levels = append(levels, level)
	}

	return nil
}
