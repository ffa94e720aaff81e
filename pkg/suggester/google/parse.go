package google

import (
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"strings"
)

const (
	jsonpPrefix = "window.google.ac.h("
	guardPrefix = ")]}'"
)

var (
	ErrUnexpectedFormat = errors.New("unexpected response format")

	regexTag = regexp.MustCompile(`<[^>]+>`)
)

// Normalize extracts suggestions from a raw completion body and falls back
// to an empty list if the body cannot be parsed.
func Normalize(text string) []string {
	suggestions, err := Parse(text)

	if err != nil {
		slog.Warn("unable to parse completion body", "error", err)
		return []string{}
	}

	return suggestions
}

// Parse extracts suggestions from a completion body. It understands the
// JSONP wrapped format, the guarded JSON format and plain JSON lists.
func Parse(text string) ([]string, error) {
	switch {
	case strings.HasPrefix(text, jsonpPrefix):
		return parseJSONP(text)

	case strings.HasPrefix(text, guardPrefix):
		return parseGuarded(strings.TrimPrefix(text, guardPrefix))

	default:
		return parseGeneric(text)
	}
}

// window.google.ac.h([[["python<b> programming</b>",0,[512]],...],{...}])
func parseJSONP(text string) ([]string, error) {
	start := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")

	if start < 0 || end <= start {
		return nil, ErrUnexpectedFormat
	}

	var data []any

	if err := json.Unmarshal([]byte(text[start+1:end]), &data); err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, ErrUnexpectedFormat
	}

	items, ok := data[0].([]any)

	if !ok {
		return nil, ErrUnexpectedFormat
	}

	suggestions := []string{}

	for _, item := range items {
		if val, ok := entryText(item); ok {
			suggestions = append(suggestions, stripTags(val))
		}
	}

	return suggestions, nil
}

// )]}'["python",[["python programming",0],["python download",0]],...]
func parseGuarded(text string) ([]string, error) {
	var data []any

	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, err
	}

	if len(data) < 2 {
		return nil, ErrUnexpectedFormat
	}

	items, ok := data[1].([]any)

	if !ok {
		return nil, ErrUnexpectedFormat
	}

	suggestions := []string{}

	for _, item := range items {
		switch val := item.(type) {
		case []any:
			if len(val) == 0 {
				continue
			}

			if s, ok := val[0].(string); ok {
				suggestions = append(suggestions, s)
			}

		case string:
			suggestions = append(suggestions, stripTags(val))
		}
	}

	return suggestions, nil
}

// ["python",["python programming","python download"]]
func parseGeneric(text string) ([]string, error) {
	var data any

	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, err
	}

	items, ok := data.([]any)

	if !ok {
		return nil, ErrUnexpectedFormat
	}

	suggestions := []string{}

	for _, item := range items {
		switch val := item.(type) {
		case []any:
			for _, member := range val {
				if s, ok := entryText(member); ok {
					suggestions = append(suggestions, stripTags(s))
				}
			}

		case string:
			suggestions = append(suggestions, stripTags(val))
		}
	}

	return suggestions, nil
}

// entryText returns the text of an entry given either as a plain string or
// as a list whose first member is a string.
func entryText(item any) (string, bool) {
	switch val := item.(type) {
	case string:
		return val, true

	case []any:
		if len(val) == 0 {
			return "", false
		}

		s, ok := val[0].(string)
		return s, ok
	}

	return "", false
}

func stripTags(val string) string {
	return regexTag.ReplaceAllString(val, "")
}
