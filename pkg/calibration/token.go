package calibration

// Token maps a textual spelling of a digit to its value.
type Token struct {
	Spelling string
	Value    int
}

var literalTokens = [...]Token{
	{"0", 0},
	{"1", 1},
	{"2", 2},
	{"3", 3},
	{"4", 4},
	{"5", 5},
	{"6", 6},
	{"7", 7},
	{"8", 8},
	{"9", 9},
}

var spelledTokens = [...]Token{
	{"zero", 0},
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
}

// LiteralTokens returns the ten literal digit characters.
func LiteralTokens() []Token {
	return append([]Token(nil), literalTokens[:]...)
}

// DefaultTokens returns all 20 tokens: literal digits followed by their
// English spellings.
func DefaultTokens() []Token {
	tokens := make([]Token, 0, len(literalTokens)+len(spelledTokens))
	tokens = append(tokens, literalTokens[:]...)
	tokens = append(tokens, spelledTokens[:]...)
	return tokens
}
