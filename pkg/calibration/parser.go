package calibration

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var defaultParser = &Parser{tokens: DefaultTokens()}

// Parser extracts calibration values using a fixed token table.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	tokens []Token
}

// Option configures a Parser.
type Option func(*Parser)

// WithTokens replaces the token table.
func WithTokens(tokens []Token) Option {
	return func(p *Parser) {
		p.tokens = append([]Token(nil), tokens...)
	}
}

// LiteralOnly restricts matching to the digit characters 0-9, ignoring
// spelled words.
func LiteralOnly() Option {
	return WithTokens(LiteralTokens())
}

// NewParser builds a Parser. Without options it matches all 20 tokens.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{tokens: DefaultTokens()}
	for _, opt := range opts {
		opt(p)
	}

	if len(p.tokens) == 0 {
		return nil, pkgerrors.Wrap(ErrInvalidToken, "token table is empty")
	}
	for _, t := range p.tokens {
		if t.Spelling == "" {
			return nil, pkgerrors.Wrapf(ErrInvalidToken, "empty spelling for value %d", t.Value)
		}
		if t.Value < 0 || t.Value > 9 {
			return nil, pkgerrors.Wrapf(ErrInvalidToken, "value %d of %q is not a single digit", t.Value, t.Spelling)
		}
	}

	return p, nil
}

// Tokens returns a copy of the token table used by p.
func (p *Parser) Tokens() []Token {
	return append([]Token(nil), p.tokens...)
}

// FirstDigit returns the value of the token that starts leftmost in line.
func (p *Parser) FirstDigit(line string) (int, error) {
	bound := len(line)
	value := -1
	for _, t := range p.tokens {
		idx := strings.Index(line, t.Spelling)
		if idx >= 0 && idx < bound {
			bound = idx
			value = t.Value
		}
	}

	if value < 0 {
		return 0, pkgerrors.Wrapf(ErrNoDigitFound, "line %q", line)
	}
	return value, nil
}

// LastDigit returns the value of the token that starts rightmost in line.
// Every token is searched independently, so overlapping spellings such as
// "oneight" still yield 8.
func (p *Parser) LastDigit(line string) (int, error) {
	bound := -1
	value := -1
	for _, t := range p.tokens {
		idx := strings.LastIndex(line, t.Spelling)
		if idx > bound {
			bound = idx
			value = t.Value
		}
	}

	if value < 0 {
		return 0, pkgerrors.Wrapf(ErrNoDigitFound, "line %q", line)
	}
	return value, nil
}

// Parse returns the calibration value of line: the first digit times ten
// plus the last digit. A line with a single token yields that digit twice.
func (p *Parser) Parse(line string) (int, error) {
	first, err := p.FirstDigit(line)
	if err != nil {
		return 0, err
	}

	last, err := p.LastDigit(line)
	if err != nil {
		return 0, err
	}

	return first*10 + last, nil
}

// ParseLine parses line with the default 20-token table.
func ParseLine(line string) (int, error) {
	return defaultParser.Parse(line)
}
