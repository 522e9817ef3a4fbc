// Package document reads calibration documents from disk.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrRead is returned when the document cannot be opened or read.
	ErrRead = errors.New("failed to read document")

	// ErrInvalidEncoding is returned when the document is not valid UTF-8.
	ErrInvalidEncoding = errors.New("document is not valid UTF-8")
)

// Document is a calibration document loaded into memory.
type Document struct {
	Path    string
	content string
}

// Open reads the whole file at path.
func Open(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		// Keep the cause in the chain so callers can still match fs.ErrNotExist.
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	if !utf8.Valid(b) {
		return nil, pkgerrors.Wrapf(ErrInvalidEncoding, "%s", path)
	}

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"bytes": len(b),
	}).Debug("loaded calibration document")

	return &Document{Path: path, content: string(b)}, nil
}

// FromString builds a Document from in-memory content.
func FromString(content string) *Document {
	return &Document{content: content}
}

// Lines returns the lines of the document. Lines end at "\n" with an
// optional "\r" before it; a final line terminator does not produce an
// extra empty line.
func (d *Document) Lines() []string {
	if d.content == "" {
		return nil
	}

	lines := strings.Split(d.content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
