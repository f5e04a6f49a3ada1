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
	"github.com/mlglue/linreg/server"
	"github.com/mlglue/linreg/server/config"
	"github.com/mlglue/linreg/version"
)

// serveArg is passed by the hosting platform when it starts the container.
const serveArg = "serve"

// Initialize default server config.
var cfg = config.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "server [serve]",
	Short: "serve the trained linear regression model",
	Long: `Server loads the model artifact from the model directory and answers health checks
on /ping and predictions on /invocations, following the contract of the hosting container.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 || (len(args) == 1 && args[0] != serveArg) {
			return fmt.Errorf("unexpected arguments %v, only %q is accepted", args, serveArg)
		}

		return nil
	},
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

		return runServer(cmd.Context())
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
	flags.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "listen address of health checks and invocations")
	flags.StringVar(&cfg.Server.ModelDir, "model-dir", cfg.Server.ModelDir, "directory the model artifact is loaded from")
	flags.Var(&cfg.Server.MaxBodySize, "max-body-size", "limit of invocation body size, like 6MB")
	flags.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", cfg.Server.ShutdownTimeout, "limit of graceful shutdown")
	flags.BoolVar(&cfg.Metrics.Enable, "metrics", cfg.Metrics.Enable, "serve prometheus metrics")
	flags.StringVar(&cfg.Metrics.Addr, "metrics-addr", cfg.Metrics.Addr, "listen address of prometheus metrics")

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg, dependency.FlagKeys{
		"server.addr":            "addr",
		"server.modelDir":        "model-dir",
		"server.maxBodySize":     "max-body-size",
		"server.shutdownTimeout": "shutdown-timeout",
		"metrics.enable":         "metrics",
		"metrics.addr":           "metrics-addr",
	})
}

func initLogger() error {
	rotateConfig := logger.LogRotateConfig{
		MaxSize:    cfg.LogMaxSize,
		MaxAge:     cfg.LogMaxAge,
		MaxBackups: cfg.LogMaxBackups,
	}

	if err := logger.InitServer(cfg.Verbose, cfg.Console, cfg.LogDir, rotateConfig); err != nil {
		return fmt.Errorf("init server logger: %w", err)
	}

	return nil
}

func runServer(ctx context.Context) error {
	logger.Infof("version:\n%s", version.Version())

	return server.New(cfg).Serve(ctx)
}
