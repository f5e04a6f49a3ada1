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
	"errors"

	"github.com/spf13/cobra"

	"github.com/mlglue/linreg/trainer"
)

var (
	predictInput  string
	predictOutput string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "score a csv file with the saved model",
	Long: `Predict loads the model artifact of the model directory, predicts every record of
the input csv file and writes feature1, feature2 and prediction columns into the output csv file.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if predictInput == "" || predictOutput == "" {
			return errors.New("predict requires parameters input and output")
		}

		if err := initLogger(); err != nil {
			return err
		}

		_, err := trainer.New(cfg).Predict(cmd.Context(), predictInput, predictOutput)
		return err
	},
}

func init() {
	flags := predictCmd.Flags()
	flags.StringVar(&cfg.ModelDir, "model-dir", cfg.ModelDir, "directory of the model artifact")
	flags.StringVarP(&predictInput, "input", "i", "", "csv file of records to predict")
	flags.StringVarP(&predictOutput, "output", "o", "", "csv file predictions are written to")
}
