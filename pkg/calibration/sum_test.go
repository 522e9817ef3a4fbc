package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	puzzleSample = []string{
		"1abc2",
		"pqr3stu8vwx",
		"a1b2c3d4e5f",
		"treb7uchet",
	}
	spelledSample = []string{
		"two1nine",
		"eightwothree",
		"abcone2threexyz",
		"xtwone3four",
		"4nineeightseven2",
		"zoneight234",
		"7pqrstsixteen",
	}
)

func TestSum(t *testing.T) {
	literal, err := NewParser(LiteralOnly())
	require.NoError(t, err)

	tests := []struct {
		name   string
		lines  []string
		parser *Parser
		want   Summary
	}{
		{
			name:   "literal sample",
			lines:  puzzleSample,
			parser: literal,
			want:   Summary{Sum: 142, Parsed: 4},
		},
		{
			name:  "spelled sample",
			lines: spelledSample,
			want:  Summary{Sum: 281, Parsed: 7},
		},
		{
			name:  "empty lines are ignored",
			lines: []string{"", "1", "", "two"},
			want:  Summary{Sum: 33, Parsed: 2},
		},
		{
			name:  "no lines",
			lines: nil,
			want:  Summary{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(tt.lines, tt.parser, PolicyAbort, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSum_ReportsInOrder(t *testing.T) {
	var results []LineResult
	summary, err := Sum(spelledSample, nil, PolicyAbort, func(r LineResult) {
		results = append(results, r)
	})
	require.NoError(t, err)
	require.Len(t, results, len(spelledSample))

	total := 0
	for i, r := range results {
		assert.Equal(t, i+1, r.Number)
		assert.Equal(t, spelledSample[i], r.Line)
		assert.NoError(t, r.Err)
		total += r.Value
	}
	assert.Equal(t, total, summary.Sum)
	assert.Equal(t, 29, results[0].Value)
	assert.Equal(t, 76, results[6].Value)
}

func TestSum_Policies(t *testing.T) {
	lines := []string{"1", "nothing here", "9"}

	t.Run("abort", func(t *testing.T) {
		var reported int
		summary, err := Sum(lines, nil, PolicyAbort, func(LineResult) { reported++ })
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoDigitFound)
		assert.Contains(t, err.Error(), "line 2")
		assert.Equal(t, Summary{Sum: 11, Parsed: 1}, summary)
		assert.Equal(t, 1, reported)
	})

	for _, policy := range []Policy{PolicyWarn, PolicySkip} {
		t.Run(policy.String(), func(t *testing.T) {
			var skipped []LineResult
			summary, err := Sum(lines, nil, policy, func(r LineResult) {
				if r.Err != nil {
					skipped = append(skipped, r)
				}
			})
			require.NoError(t, err)
			assert.Equal(t, Summary{Sum: 110, Parsed: 2, Skipped: 1}, summary)
			require.Len(t, skipped, 1)
			assert.Equal(t, 2, skipped[0].Number)
			assert.ErrorIs(t, skipped[0].Err, ErrNoDigitFound)
		})
	}

	t.Run("whitespace only line aborts", func(t *testing.T) {
		summary, err := Sum([]string{"1", "   ", "\t", "9"}, nil, PolicyAbort, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoDigitFound)
		assert.Contains(t, err.Error(), "line 2")
		assert.Equal(t, Summary{Sum: 11, Parsed: 1}, summary)
	})

	t.Run("whitespace only lines are skipped by policy", func(t *testing.T) {
		var skipped []int
		summary, err := Sum([]string{"1", "   ", "\t", "9"}, nil, PolicySkip, func(r LineResult) {
			if r.Err != nil {
				skipped = append(skipped, r.Number)
			}
		})
		require.NoError(t, err)
		assert.Equal(t, Summary{Sum: 110, Parsed: 2, Skipped: 2}, summary)
		assert.Equal(t, []int{2, 3}, skipped)
	})

	t.Run("empty defaults to abort", func(t *testing.T) {
		_, err := Sum(lines, nil, "", nil)
		assert.ErrorIs(t, err, ErrNoDigitFound)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Sum(lines, nil, "ignore", nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoDigitFound)
	})
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "abort", want: PolicyAbort},
		{in: " WARN ", want: PolicyWarn},
		{in: "Skip", want: PolicySkip},
		{in: "", wantErr: true},
		{in: "continue", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
