package suggester

import (
	"context"
	"errors"
)

type Provider interface {
	Suggest(ctx context.Context, query string, options *SuggestOptions) (*Result, error)
}

// MaxSuggestions is the upper bound of suggestions returned per provider.
const MaxSuggestions = 10

// UserAgent is sent with every upstream request.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var (
	ErrInvalidQuery = errors.New("invalid query")
)

type Source string

const (
	SourceGoogle  Source = "google"
	SourceAmazon  Source = "amazon"
	SourceYouTube Source = "youtube"
)

// Sources lists all known sources in declaration order.
var Sources = []Source{
	SourceGoogle,
	SourceAmazon,
	SourceYouTube,
}

func (s Source) Name() string {
	switch s {
	case SourceGoogle:
		return "Google"
	case SourceAmazon:
		return "Amazon"
	case SourceYouTube:
		return "YouTube"
	}

	return string(s)
}

func ParseSource(val string) (Source, bool) {
	for _, s := range Sources {
		if string(s) == val {
			return s, true
		}
	}

	return "", false
}

type SuggestOptions struct {
	Limit *int
}

type Result struct {
	Query  string
	Source Source

	Suggestions []string
}

// Limit returns the effective number of suggestions for the given options.
func Limit(options *SuggestOptions) int {
	if options == nil || options.Limit == nil {
		return MaxSuggestions
	}

	if *options.Limit <= 0 || *options.Limit > MaxSuggestions {
		return MaxSuggestions
	}

	return *options.Limit
}

// Truncate keeps at most limit leading suggestions. The result is never nil.
func Truncate(suggestions []string, limit int) []string {
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	result := make([]string, len(suggestions))
	copy(result, suggestions)

	return result
}
