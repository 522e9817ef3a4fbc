package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/trebuchet/pkg/config"
	"github.com/charlie0129/trebuchet/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "parse [line...]",
		Short:   "Calibrate lines given as arguments",
		GroupID: gCalibrate,
		Long: `Calibrate lines given as arguments instead of reading a file.

Each argument is treated as one line of a calibration document.`,
		Example: `  trebuchet parse two1nine eightwothree`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return calibrate(cmd, args, conf)
		},
	}
}

func NewInitConfigCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init-config [path]",
		Short:   "Write a config file with the current settings",
		GroupID: gConfig,
		Long: `Write a config file with the current settings.

Values come from the built-in defaults, the file given by --config (if any) and
the flags given on the command line, in that order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", path)
			}

			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			raw, err := config.NewRawFileConfigFromConfig(conf)
			if err != nil {
				return err
			}
			if err := config.NewFileFromConfig(raw, path).Save(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			logrus.WithFields(conf.LogrusFields()).Infof("wrote config to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
