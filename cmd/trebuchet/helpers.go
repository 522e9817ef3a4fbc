package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/trebuchet/pkg/calibration"
	"github.com/charlie0129/trebuchet/pkg/config"
)

// loadConfig reads the config file and applies flags that were set
// explicitly on the command line on top of it.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("literal-only") {
		conf.SetLiteralOnly(literalOnly)
	}
	if flags.Changed("on-invalid") {
		policy, err := calibration.ParsePolicy(onInvalid)
		if err != nil {
			return nil, err
		}
		conf.SetInvalidLinePolicy(policy)
	}

	logrus.WithFields(conf.LogrusFields()).Debug("loaded config")

	return conf, nil
}

func newParser(conf config.Config) (*calibration.Parser, error) {
	if conf.LiteralOnly() {
		return calibration.NewParser(calibration.LiteralOnly())
	}
	return calibration.NewParser()
}

// calibrate prints one trace line per calibrated line followed by the total.
func calibrate(cmd *cobra.Command, lines []string, conf config.Config) error {
	parser, err := newParser(conf)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	summary, err := calibration.Sum(lines, parser, conf.InvalidLinePolicy(), func(r calibration.LineResult) {
		if r.Err != nil {
			return
		}
		fmt.Fprintf(out, "line: %s, parse: %d\n", r.Line, r.Value)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, bold("FINAL RESULT: %d", summary.Sum))

	logrus.WithFields(logrus.Fields{
		"parsed":  summary.Parsed,
		"skipped": summary.Skipped,
		"sum":     summary.Sum,
	}).Debug("calibration finished")

	return nil
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
