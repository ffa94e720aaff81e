package amazon

import (
	"errors"
	"log/slog"
)

var (
	ErrUnexpectedFormat = errors.New("unexpected response format")
)

// Normalize extracts suggestions from a decoded completion response and
// falls back to an empty list if the shape is not understood.
func Normalize(data any) []string {
	suggestions, err := Parse(data)

	if err != nil {
		slog.Warn("unable to parse completion response", "error", err)
		return []string{}
	}

	return suggestions
}

// Parse collects the "value" member of every entry in the "suggestions"
// list of a decoded completion response.
//
//	{"alias":"aps","prefix":"iph","suggestions":[{"value":"iphone 15"},...]}
func Parse(data any) ([]string, error) {
	object, ok := data.(map[string]any)

	if !ok {
		return nil, ErrUnexpectedFormat
	}

	val, ok := object["suggestions"]

	if !ok {
		return []string{}, nil
	}

	items, ok := val.([]any)

	if !ok {
		return nil, ErrUnexpectedFormat
	}

	suggestions := []string{}

	for _, item := range items {
		entry, ok := item.(map[string]any)

		if !ok {
			continue
		}

		if s, ok := entry["value"].(string); ok {
			suggestions = append(suggestions, s)
		}
	}

	return suggestions, nil
}
