// SPDX-License-Identifier: MIT

// Package cmd holds the cobra command tree of the sparsedemo binary.
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/internal/demo"
	"github.com/katalvlaran/sparsemat/internal/logger"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	colorMode   string
	printConfig bool
}

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{
	colorModeNever,
	colorModeAlways,
}

var longRootCmdDescription = `sparsedemo fills a sparse matrix with a double diagonal, prints a
window of it, its exact size and every filled cell.

Settings come from flags, then SPARSEDEMO_* environment variables, then the
YAML file given by --config, then built-in defaults.
`

// Execute runs the root command against os.Stdout.
// This is called by main.main().
func Execute() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.Errorf("sparsedemo: %v", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOpts{}
	root := &cobra.Command{
		Use:           "sparsedemo",
		Short:         "Demonstrate the sparse infinite matrix.",
		Long:          longRootCmdDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, out)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "YAML config file of the demo")
	root.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	root.PersistentFlags().BoolVar(&opts.hideLogTime, "hide-time", false, "hide the log time")
	root.PersistentFlags().StringVar(&opts.colorMode, "color", colorModeAlways, fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))
	root.Flags().BoolVar(&opts.printConfig, "print-config", false, "print the resolved config as YAML and exit")
	config.RegisterFlags(root.Flags())
	root.DisableAutoGenTag = true

	return root
}

func run(cmd *cobra.Command, opts *rootOpts, out io.Writer) error {
	if !slices.Contains(supportedColorModes, opts.colorMode) {
		return errors.Errorf("invalid color mode %q, the possible values can be %v", opts.colorMode, supportedColorModes)
	}
	logger.Init(logger.LogOptions{
		Verbose:      opts.debugModeOn,
		DisableColor: opts.colorMode == colorModeNever,
		HideLogTime:  opts.hideLogTime,
	})

	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logrus.Debugf("resolved config: size=%d layout=%s format=%s", cfg.Size, cfg.Layout, cfg.Format)

	if opts.printConfig {
		b, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return errors.Wrap(err, "write config")
	}

	return demo.Run(out, cfg)
}
