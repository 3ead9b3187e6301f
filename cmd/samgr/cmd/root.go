/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/log"

	"sigs.k8s.io/sa-manager/internal/signals"
	"sigs.k8s.io/sa-manager/manager"
	"sigs.k8s.io/sa-manager/manager/options"
)

// rootCmd runs one action against the service accounts of a project.
var rootCmd = &cobra.Command{
	Use:   "samgr",
	Short: "Manage the service accounts of a Google Cloud project",
	Long: `samgr - service account manager

Create, get, list and delete the service accounts of a project, and create,
list and delete their keys. Exactly one action runs per invocation:

  samgr --project acme --action create --account drive1
  samgr --project acme --action create-key --account drive1 --output-dir gs://acme-keys
`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.Wrap(
			runManager(cmd, runOpts),
			"run `samgr`",
		)
	},
}

type rootOptions struct {
	logLevel   string
	configFile string
}

var (
	rootOpts = &rootOptions{}
	runOpts  = options.DefaultOptions()
)

// Execute adds all child commands to the root command and sets flags.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.logLevel,
		"log-level",
		"info",
		fmt.Sprintf("the logging verbosity, either %s", log.LevelNames()),
	)

	rootCmd.Flags().StringVar(
		&rootOpts.configFile,
		"config",
		"",
		"YAML file with default values for any of the flags, flags passed explicitly win",
	)

	runOpts.AddFlags(rootCmd.Flags())

	rootCmd.AddCommand(versionCmd)
}

func initLogging(*cobra.Command, []string) error {
	return log.SetupGlobalLogger(rootOpts.logLevel)
}

func runManager(cmd *cobra.Command, opts *options.Options) error {
	if rootOpts.configFile != "" {
		if err := opts.MergeFile(rootOpts.configFile, cmd.Flags().Changed); err != nil {
			return errors.Wrap(err, "loading configuration")
		}
	}

	ctx, stop := signals.Watch(context.Background())
	defer stop()

	return manager.New().Run(ctx, opts)
}
