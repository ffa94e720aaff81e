package amazon_test

import (
	"encoding/json"
	"testing"

	"github.com/adrianliechti/suggest/pkg/suggester/amazon"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, text string) any {
	t.Helper()

	var data any
	require.NoError(t, json.Unmarshal([]byte(text), &data))

	return data
}

func TestParse(t *testing.T) {
	data := decode(t, `{"suggestions":[{"value":"a"},{"value":"b"},{"notvalue":"x"}]}`)

	result, err := amazon.Parse(data)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, result)
}

func TestParseSkipsInvalidEntries(t *testing.T) {
	data := decode(t, `{"alias":"aps","suggestions":[{"value":"iphone 15","type":"KEYWORD"},"value",42,{"value":7},{"value":"iphone charger"}]}`)

	result, err := amazon.Parse(data)
	require.NoError(t, err)
	require.Equal(t, []string{"iphone 15", "iphone charger"}, result)
}

func TestParseMissingSuggestions(t *testing.T) {
	result, err := amazon.Parse(decode(t, `{"prefix":"x"}`))
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		`[{"value":"a"}]`,
		`"text"`,
		`null`,
		`{"suggestions":"a"}`,
		`{"suggestions":{"value":"a"}}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			data := decode(t, input)

			_, err := amazon.Parse(data)
			require.Error(t, err)

			result := amazon.Normalize(data)
			require.NotNil(t, result)
			require.Empty(t, result)
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	data := decode(t, `{"suggestions":[{"value":"x"},{"value":"y"}]}`)

	require.Equal(t, amazon.Normalize(data), amazon.Normalize(data))
}
