package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/trebuchet/pkg/calibration"
	"github.com/charlie0129/trebuchet/pkg/document"
)

var (
	logLevel    = "info"
	configPath  = ""
	literalOnly = false
	onInvalid   = string(calibration.PolicyAbort)
	noColor     = false
)

var (
	gCalibrate    = "Calibrate:"
	gConfig       = "Configuration:"
	commandGroups = []string{
		gCalibrate,
		gConfig,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	red := color.New(color.FgRed, color.Bold)
	switch {
	case errors.Is(err, ErrMissingArgument):
		// Already reported on stdout.
	case errors.Is(err, document.ErrRead):
		fmt.Fprintln(os.Stderr, red.Sprint("Error:"), err)
		fmt.Fprintln(os.Stderr, "Does the file exist and can you read it?")
	case errors.Is(err, document.ErrInvalidEncoding):
		fmt.Fprintln(os.Stderr, red.Sprint("Error:"), err)
		fmt.Fprintln(os.Stderr, "Calibration documents must be UTF-8 text.")
	case errors.Is(err, calibration.ErrNoDigitFound):
		fmt.Fprintln(os.Stderr, red.Sprint("Error:"), err)
		fmt.Fprintln(os.Stderr, "  - Every line needs at least one digit or spelled number")
		fmt.Fprintln(os.Stderr, "  - Or run again with '--on-invalid=warn' to skip such lines")
	default:
		fmt.Fprintln(os.Stderr, red.Sprint("Error:"), err)
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trebuchet [file]",
		Short: "trebuchet recovers calibration values from a calibration document",
		Long: `trebuchet recovers calibration values from a calibration document.

Each line holds a calibration value made of its first and last digit. Digits
are either the characters 0-9 or the words zero to nine, and spelled words may
overlap ("eightwo" is 8 then 2). The values of all lines are summed.

Subcommand names take precedence over file names: to read a file called
"version" or "parse" in the current directory, pass it as ./version.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				color.NoColor = true
			}
			return setupLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No test file provided, check help")
				return ErrMissingArgument
			}

			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			doc, err := document.Open(args[0])
			if err != nil {
				return err
			}

			logrus.WithField("file", doc.Path).Debug("calibrating document")
			return calibrate(cmd, doc.Lines(), conf)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", "", "config file path")
	globalFlags.BoolVar(&literalOnly, "literal-only", false, "only count the characters 0-9 as digits, ignore spelled numbers")
	globalFlags.StringVar(&onInvalid, "on-invalid", string(calibration.PolicyAbort), "what to do with lines without any digit (abort, warn, skip)")
	globalFlags.BoolVar(&noColor, "no-color", false, "disable colored output")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewVersionCommand(),
		NewParseCommand(),
		NewInitConfigCommand(),
	)

	return cmd
}
