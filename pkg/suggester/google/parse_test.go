package google_test

import (
	"testing"

	"github.com/adrianliechti/suggest/pkg/suggester/google"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "jsonp entries",
			input:    `window.google.ac.h([[["python<b> programming</b>",0,[512]],["python download",0,[512]]],{"q":"abc"}])`,
			expected: []string{"python programming", "python download"},
		},
		{
			name:     "jsonp strings",
			input:    `window.google.ac.h([["<b>go</b> tour","golang"],{}])`,
			expected: []string{"go tour", "golang"},
		},
		{
			name:     "guarded entries",
			input:    `)]}'` + `["python",[["python programming",0],["python <b>download</b>",0]],{"a":1}]`,
			expected: []string{"python programming", "python <b>download</b>"},
		},
		{
			name:     "guarded strings",
			input:    `)]}'` + `["python",["python <b>tutorial</b>","python docs"]]`,
			expected: []string{"python tutorial", "python docs"},
		},
		{
			name:     "generic lists",
			input:    `["python",["python <i>list</i>",["python dict",0],42,[]]]`,
			expected: []string{"python", "python list", "python dict"},
		},
		{
			name:     "generic strings",
			input:    `["a<b>b</b>","c"]`,
			expected: []string{"ab", "c"},
		},
		{
			name:     "empty list",
			input:    `[]`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := google.Parse(tt.input)

			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		`window.google.ac.h(`,
		`window.google.ac.h([[["trunc`,
		`window.google.ac.h({"a":1})`,
		`window.google.ac.h([])`,
		`window.google.ac.h(["x"])`,
		`)]}'`,
		`)]}'["only"]`,
		`)]}'["q","not a list"]`,
		`)]}'[[["trunc"`,
		`{"suggestions":[]}`,
		`"text"`,
		`[["unterminated"`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := google.Parse(input)
			require.Error(t, err)

			result := google.Normalize(input)
			require.NotNil(t, result)
			require.Empty(t, result)
		})
	}
}

func TestParseStripsEveryTag(t *testing.T) {
	result, err := google.Parse(`["<span class=\"x\">a</span> <b>b</b>"]`)

	require.NoError(t, err)
	require.Equal(t, []string{"a b"}, result)
}

func TestParseIdempotent(t *testing.T) {
	input := `window.google.ac.h([[["one",0],["<b>two</b>",0]]])`

	first := google.Normalize(input)
	second := google.Normalize(input)

	require.Equal(t, first, second)
	require.Equal(t, []string{"one", "two"}, first)
}
