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
	"github.com/mlglue/linreg/deployer"
	"github.com/mlglue/linreg/deployer/config"
	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/cloud"
	"github.com/mlglue/linreg/pkg/objectstorage"
	"github.com/mlglue/linreg/version"
)

// Initialize default deployer config.
var cfg = config.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "deployer",
	Short: "deploy the trained linear regression model",
	Long: `Deployer registers the model artifact in object storage as a model served by the
scikit-learn framework container, and creates a real-time endpoint with a single variant
taking all traffic.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize logger.
		if err := initLogger(); err != nil {
			return err
		}

		return runDeployer(cmd.Context())
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
	flags.StringVar(&cfg.Role, "role", cfg.Role, "execution role arn assumed by the model")
	flags.StringVar(&cfg.Region, "region", cfg.Region, "region of the endpoint, default is the region of the shared aws config")
	flags.StringVar(&cfg.ModelData, "model-data", cfg.ModelData, "object url of the model artifact tarball")
	flags.StringVar(&cfg.UploadModel, "upload-model", cfg.UploadModel, "local model tarball uploaded to the model data url before registering")
	flags.StringVar(&cfg.EndpointName, "endpoint-name", cfg.EndpointName, "name of the endpoint, generated from the base name when empty")
	flags.StringVar(&cfg.BaseName, "base-name", cfg.BaseName, "prefix of generated model and endpoint names")
	flags.BoolVar(&cfg.Wait, "wait", cfg.Wait, "wait until the endpoint is in service")
	flags.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "interval of polling endpoint status")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "limit of waiting for the endpoint in service")
	flags.StringVar(&cfg.Model.EntryPoint, "entry-point", cfg.Model.EntryPoint, "user script loaded by the serving container")
	flags.StringVar(&cfg.Model.SourceDir, "source-dir", cfg.Model.SourceDir, "local directory packed with the entry point")
	flags.StringVar(&cfg.Model.SubmitDirectory, "submit-directory", cfg.Model.SubmitDirectory, "object url of packed sources, skips packing when set")
	flags.StringVar(&cfg.Model.FrameworkVersion, "framework-version", cfg.Model.FrameworkVersion, "scikit-learn framework version")
	flags.StringVar(&cfg.Model.Image, "image", cfg.Model.Image, "serving image overriding the framework image")
	flags.StringVar(&cfg.Model.InstanceType, "instance-type", cfg.Model.InstanceType, "hosting instance type")
	flags.IntVar(&cfg.Model.InstanceCount, "instance-count", cfg.Model.InstanceCount, "initial hosting instance count")

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg, dependency.FlagKeys{
		"role":                   "role",
		"region":                 "region",
		"modelData":              "model-data",
		"uploadModel":            "upload-model",
		"endpointName":           "endpoint-name",
		"baseName":               "base-name",
		"wait":                   "wait",
		"pollInterval":           "poll-interval",
		"timeout":                "timeout",
		"model.entryPoint":       "entry-point",
		"model.sourceDir":        "source-dir",
		"model.submitDirectory":  "submit-directory",
		"model.frameworkVersion": "framework-version",
		"model.image":            "image",
		"model.instanceType":     "instance-type",
		"model.instanceCount":    "instance-count",
	})
}

func initLogger() error {
	rotateConfig := logger.LogRotateConfig{
		MaxSize:    cfg.LogMaxSize,
		MaxAge:     cfg.LogMaxAge,
		MaxBackups: cfg.LogMaxBackups,
	}

	if err := logger.InitDeployer(cfg.Verbose, cfg.Console, cfg.LogDir, rotateConfig); err != nil {
		return fmt.Errorf("init deployer logger: %w", err)
	}

	return nil
}

func runDeployer(ctx context.Context) error {
	logger.Infof("version:\n%s", version.Version())

	sess, err := cloud.NewSession(cfg.Region, cfg.Verbose)
	if err != nil {
		return err
	}

	region := cloud.Region(sess)
	if region == "" {
		return errors.New("deployer requires parameter region")
	}

	d := deployer.New(cfg, region, sagemaker.New(sess), objectstorage.New(sess))
	endpoint, err := d.Deploy(ctx)
	if err != nil {
		return err
	}

	logger.WithEndpoint(endpoint.Name).Infof("endpoint %s, status %s", endpoint.Arn, endpoint.Status)
	return nil
}
