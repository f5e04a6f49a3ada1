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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go/service/sagemaker"
	"github.com/spf13/cobra"

	"github.com/mlglue/linreg/cmd/dependency"
	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/cloud"
	"github.com/mlglue/linreg/pkg/objectstorage"
	"github.com/mlglue/linreg/submitter"
	"github.com/mlglue/linreg/submitter/config"
	"github.com/mlglue/linreg/version"
)

// Initialize default submitter config.
var cfg = config.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "submitter",
	Short: "submit the linear regression training job",
	Long: `Submitter starts a managed training job running the entry point in the scikit-learn
framework container against the training data in object storage, and waits until the job is
completed. The model artifact is written under the output path.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := cfg.Convert(); err != nil {
			return err
		}

		// Initialize logger.
		if err := initLogger(); err != nil {
			return err
		}

		return runSubmitter(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.Role, "role", cfg.Role, "execution role arn assumed by the training job")
	flags.StringVar(&cfg.Region, "region", cfg.Region, "region of the training job, default is the region of the shared aws config")
	flags.StringVar(&cfg.Bucket, "bucket", cfg.Bucket, "bucket of training data, sources and model artifacts")
	flags.StringVar(&cfg.TrainingData, "training-data", cfg.TrainingData, "object url of training data, default is s3://<bucket>/train.csv")
	flags.StringVar(&cfg.OutputPath, "output-path", cfg.OutputPath, "object url prefix of model artifacts, default is s3://<bucket>/")
	flags.StringVar(&cfg.UploadTrainingFile, "upload-training-file", cfg.UploadTrainingFile, "local csv file uploaded to the training data url before submitting")
	flags.BoolVar(&cfg.Wait, "wait", cfg.Wait, "wait until the training job is completed or stopped")
	flags.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "interval of polling training job status")
	flags.StringVar(&cfg.Estimator.EntryPoint, "entry-point", cfg.Estimator.EntryPoint, "user script run by the framework container")
	flags.StringVar(&cfg.Estimator.SourceDir, "source-dir", cfg.Estimator.SourceDir, "local directory packed with the entry point")
	flags.StringVar(&cfg.Estimator.SubmitDirectory, "submit-directory", cfg.Estimator.SubmitDirectory, "object url of packed sources, skips packing when set")
	flags.StringVar(&cfg.Estimator.FrameworkVersion, "framework-version", cfg.Estimator.FrameworkVersion, "scikit-learn framework version")
	flags.StringVar(&cfg.Estimator.Image, "image", cfg.Estimator.Image, "training image overriding the framework image")
	flags.StringVar(&cfg.Estimator.InstanceType, "instance-type", cfg.Estimator.InstanceType, "training instance type")
	flags.IntVar(&cfg.Estimator.InstanceCount, "instance-count", cfg.Estimator.InstanceCount, "training instance count")
	flags.IntVar(&cfg.Estimator.VolumeSizeGB, "volume-size", cfg.Estimator.VolumeSizeGB, "size in GB of the storage volume attached to instances")
	flags.DurationVar(&cfg.Estimator.MaxRuntime, "max-runtime", cfg.Estimator.MaxRuntime, "limit of training job runtime")
	flags.StringVar(&cfg.Estimator.JobBaseName, "job-base-name", cfg.Estimator.JobBaseName, "prefix of training job names")

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg, dependency.FlagKeys{
		"role":                       "role",
		"region":                     "region",
		"bucket":                     "bucket",
		"trainingData":               "training-data",
		"outputPath":                 "output-path",
		"uploadTrainingFile":         "upload-training-file",
		"wait":                       "wait",
		"pollInterval":               "poll-interval",
		"estimator.entryPoint":       "entry-point",
		"estimator.sourceDir":        "source-dir",
		"estimator.submitDirectory":  "submit-directory",
		"estimator.frameworkVersion": "framework-version",
		"estimator.image":            "image",
		"estimator.instanceType":     "instance-type",
		"estimator.instanceCount":    "instance-count",
		"estimator.volumeSizeGB":     "volume-size",
		"estimator.maxRuntime":       "max-runtime",
		"estimator.jobBaseName":      "job-base-name",
	})
}

func initLogger() error {
	rotateConfig := logger.LogRotateConfig{
		MaxSize:    cfg.LogMaxSize,
		MaxAge:     cfg.LogMaxAge,
		MaxBackups: cfg.LogMaxBackups,
	}

	if err := logger.InitSubmitter(cfg.Verbose, cfg.Console, cfg.LogDir, rotateConfig); err != nil {
		return fmt.Errorf("init submitter logger: %w", err)
	}

	return nil
}

func runSubmitter(ctx context.Context) error {
	logger.Infof("version:\n%s", version.Version())

	sess, err := cloud.NewSession(cfg.Region, cfg.Verbose)
	if err != nil {
		return err
	}

	region := cloud.Region(sess)
	if region == "" {
		return errors.New("submitter requires parameter region")
	}

	s := submitter.New(cfg, region, sagemaker.New(sess), objectstorage.New(sess))
	job, err := s.Submit(ctx)
	if err != nil {
		return err
	}

	logger.WithTrainingJob(job.Name).Infof("training job %s, status %s", job.Arn, job.Status)
	return nil
}
