package calibration

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LineResult is the outcome of calibrating one line. Number is 1-based.
// Err is set only for lines skipped under PolicyWarn or PolicySkip.
type LineResult struct {
	Number int
	Line   string
	Value  int
	Err    error
}

// Summary aggregates the values of a whole document.
type Summary struct {
	Sum     int
	Parsed  int
	Skipped int
}

// Sum calibrates lines in order and adds up their values. report, if not nil,
// is called once per non-empty line. Empty lines are ignored; a line holding
// only whitespace is not empty and goes through the policy like any other
// line without a digit.
//
// With PolicyAbort the first line without a digit ends the walk and its error
// is returned together with the summary accumulated so far.
func Sum(lines []string, p *Parser, policy Policy, report func(LineResult)) (Summary, error) {
	if p == nil {
		p = defaultParser
	}
	if policy == "" {
		policy = PolicyAbort
	}
	policy, err := ParsePolicy(string(policy))
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for i, line := range lines {
		number := i + 1
		if line == "" {
			logrus.WithField("line", number).Debug("ignoring empty line")
			continue
		}

		value, err := p.Parse(line)
		if err != nil {
			switch policy {
			case PolicyAbort:
				return summary, pkgerrors.Wrapf(err, "failed to calibrate line %d", number)
			case PolicyWarn:
				logrus.WithFields(logrus.Fields{
					"line":    number,
					"content": line,
				}).Warn("skipping line without a digit")
			default:
				logrus.WithField("line", number).Debug("skipping line without a digit")
			}
			summary.Skipped++
			if report != nil {
				report(LineResult{Number: number, Line: line, Err: err})
			}
			continue
		}

		summary.Sum += value
		summary.Parsed++
		if report != nil {
			report(LineResult{Number: number, Line: line, Value: value})
		}
	}

	return summary, nil
}
