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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlglue/linreg/cmd/dependency"
	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/trainer"
	"github.com/mlglue/linreg/trainer/config"
	"github.com/mlglue/linreg/version"
)

// Initialize default trainer config.
var cfg = config.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "train the linear regression model",
	Long: `Trainer reads the training records in csv format, fits an ordinary least squares
linear regression of target on feature1 and feature2, and writes the model artifact
into the model directory. It runs inside the managed training container.`,
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

		return runTrainer(cmd.Context())
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
	flags.StringVar(&cfg.TrainFile, "train-file", cfg.TrainFile, "csv file of training records")
	flags.StringVar(&cfg.ModelDir, "model-dir", cfg.ModelDir, "directory the model artifact is written to")

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg, dependency.FlagKeys{
		"trainFile": "train-file",
		"modelDir":  "model-dir",
	})

	rootCmd.AddCommand(predictCmd)
}

func initLogger() error {
	rotateConfig := logger.LogRotateConfig{
		MaxSize:    cfg.LogMaxSize,
		MaxAge:     cfg.LogMaxAge,
		MaxBackups: cfg.LogMaxBackups,
	}

	if err := logger.InitTrainer(cfg.Verbose, cfg.Console, cfg.LogDir, rotateConfig); err != nil {
		return fmt.Errorf("init trainer logger: %w", err)
	}

	return nil
}

func runTrainer(ctx context.Context) error {
	logger.Infof("version:\n%s", version.Version())

	_, err := trainer.New(cfg).Run(ctx)
	return err
}
