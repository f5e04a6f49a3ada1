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

package dependency

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/unit"
)

// FlagKeys maps config keys to the names of the flags setting them.
type FlagKeys map[string]string

// InitCommandAndConfig binds common flags of the command, and loads config
// from file, environment and flags into config before the command runs.
// Flags take precedence over environment, environment over the config file.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any, keys FlagKeys) {
	// Add common cmds only on root cmd.
	if !cmd.HasParent() {
		cmd.AddCommand(VersionCmd)
	}

	flags := cmd.PersistentFlags()
	flags.Bool("console", true, "whether logger output records to the stdout")
	flags.Bool("verbose", false, "whether logger use debug level")
	flags.String("log-dir", "", "directory of log files")
	if useConfigFile {
		flags.String("config", "", "the path of configuration file with yaml extension name")
	}

	common := FlagKeys{
		"console": "console",
		"verbose": "verbose",
		"logDir":  "log-dir",
	}

	cobra.OnInitialize(func() {
		if err := initConfig(cmd, useConfigFile, config, common, keys); err != nil {
			logger.Fatalf("init %s config: %s", cmd.Name(), err)
		}
	})
}

func initConfig(cmd *cobra.Command, useConfigFile bool, config any, common, keys FlagKeys) error {
	v := viper.GetViper()
	v.SetEnvPrefix(cmd.Name())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, cmd.PersistentFlags(), common); err != nil {
		return err
	}

	if err := bindFlags(v, cmd.Flags(), keys); err != nil {
		return err
	}

	if useConfigFile {
		cfgFile, _ := cmd.PersistentFlags().GetString("config")
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "read config file %s", cfgFile)
			}

			logger.Debugf("using config file: %s", v.ConfigFileUsed())
		}
	}

	return v.Unmarshal(config, initDecoderConfig)
}

// bindFlags binds the flags changed on the command line. Unchanged flags
// only register their key for environment lookup, the defaults already
// live in config.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys FlagKeys) error {
	for key, name := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			return errors.Errorf("flag %s not found", name)
		}

		if !flag.Changed {
			if err := v.BindEnv(key); err != nil {
				return err
			}
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	return nil
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.TagName = "mapstructure"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		expandPathHookFunc(),
		bytesHookFunc(),
	)
}

// bytesHookFunc decodes size strings like 6MB into unit.Bytes.
func bytesHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(unit.Bytes(0)) {
			return data, nil
		}

		var b unit.Bytes
		if err := b.Set(data.(string)); err != nil {
			return nil, err
		}

		return b, nil
	}
}

// expandPathHookFunc expands a leading ~ of string values into the home directory.
func expandPathHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}

		s := data.(string)
		if !strings.HasPrefix(s, "~/") {
			return data, nil
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return data, nil
		}

		return filepath.Join(home, s[2:]), nil
	}
}
