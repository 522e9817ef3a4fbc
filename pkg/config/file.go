package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/trebuchet/pkg/calibration"
	"github.com/charlie0129/trebuchet/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		LiteralOnly: ptr.To(false),
		// Fail fast like the puzzle expects. A line without digits usually
		// means the wrong file was given.
		OnInvalid: ptr.To(string(calibration.PolicyAbort)),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// NewFile loads the config at configPath. A missing or empty file yields
// the defaults.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = &RawFileConfig{}
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	LiteralOnly *bool   `json:"literalOnly,omitempty"`
	OnInvalid   *string `json:"onInvalid,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		LiteralOnly: ptr.To(c.LiteralOnly()),
		OnInvalid:   ptr.To(string(c.InvalidLinePolicy())),
	}

	return rawConfig, nil
}

func (c *RawFileConfig) validate() error {
	if c.OnInvalid != nil {
		if _, err := calibration.ParsePolicy(*c.OnInvalid); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) LiteralOnly() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.LiteralOnly != nil {
		return *f.c.LiteralOnly
	}
	return *defaultFileConfig.LiteralOnly
}

func (f *File) InvalidLinePolicy() calibration.Policy {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	raw := *defaultFileConfig.OnInvalid
	if f.c.OnInvalid != nil {
		raw = *f.c.OnInvalid
	}

	policy, err := calibration.ParsePolicy(raw)
	if err != nil {
		// Load rejects unknown values, so this only happens when the raw
		// config was built by hand.
		logrus.WithError(err).Warn("falling back to default invalid line policy")
		return calibration.Policy(*defaultFileConfig.OnInvalid)
	}
	return policy
}

func (f *File) SetLiteralOnly(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.c.LiteralOnly = &b
}

func (f *File) SetInvalidLinePolicy(p calibration.Policy) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.c.OnInvalid = ptr.To(string(p))
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.filepath == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	if err := conf.validate(); err != nil {
		return pkgerrors.Wrapf(err, "invalid config in file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}
	if f.filepath == "" {
		return pkgerrors.New("config file path is empty")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"literalOnly": f.LiteralOnly(),
		"onInvalid":   f.InvalidLinePolicy(),
	}
}
