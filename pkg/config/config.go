package config

import (
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/trebuchet/pkg/calibration"
)

type Config interface {
	// LiteralOnly reports whether only the characters 0-9 count as digits.
	LiteralOnly() bool
	// InvalidLinePolicy is applied to lines without any digit.
	InvalidLinePolicy() calibration.Policy

	SetLiteralOnly(bool)
	SetInvalidLinePolicy(calibration.Policy)

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
