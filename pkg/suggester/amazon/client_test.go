package amazon_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/suggest/pkg/suggester"
	"github.com/adrianliechti/suggest/pkg/suggester/amazon"

	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	var received *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"alias":"aps","prefix":"head","suggestions":[{"value":"headphones"},{"value":"headlamp"}]}`)
	}))

	defer server.Close()

	c, err := amazon.New(amazon.WithURL(server.URL))
	require.NoError(t, err)

	result, err := c.Suggest(context.Background(), "head phones", nil)
	require.NoError(t, err)

	require.Equal(t, "head phones", result.Query)
	require.Equal(t, suggester.SourceAmazon, result.Source)
	require.Equal(t, []string{"headphones", "headlamp"}, result.Suggestions)

	query := received.URL.Query()

	require.Equal(t, "head phones", query.Get("prefix"))
	require.Equal(t, "ATVPDKIKX0DER", query.Get("mid"))
	require.Equal(t, "en_US", query.Get("lop"))
	require.Equal(t, "aps", query.Get("alias"))
	require.Equal(t, suggester.UserAgent, received.Header.Get("User-Agent"))
}

func TestSuggestTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []string

		for i := range 12 {
			items = append(items, fmt.Sprintf(`{"value":"v%d"}`, i))
		}

		fmt.Fprintf(w, `{"suggestions":[%s]}`, strings.Join(items, ","))
	}))

	defer server.Close()

	c, err := amazon.New(amazon.WithURL(server.URL))
	require.NoError(t, err)

	result, err := c.Suggest(context.Background(), "v", nil)
	require.NoError(t, err)
	require.Len(t, result.Suggestions, suggester.MaxSuggestions)
	require.Equal(t, "v9", result.Suggestions[9])
}

func TestSuggestInvalidJSON(t *testing.T) {
	tests := map[string]string{
		"truncated":        `{"suggestions":[`,
		"trailing garbage": `{"suggestions":[{"value":"a"}]}<html>garbage`,
		"html":             `<html><body>Service Unavailable</body></html>`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			}))

			defer server.Close()

			c, err := amazon.New(amazon.WithURL(server.URL))
			require.NoError(t, err)

			result, err := c.Suggest(context.Background(), "laptop", nil)
			require.Error(t, err)
			require.Nil(t, result)

			source, ok := suggester.FailedSource(err)
			require.True(t, ok)
			require.Equal(t, suggester.SourceAmazon, source)
		})
	}
}

func TestSuggestUnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"bad request","suggestions":"none"}`)
	}))

	defer server.Close()

	c, err := amazon.New(amazon.WithURL(server.URL))
	require.NoError(t, err)

	result, err := c.Suggest(context.Background(), "laptop", nil)
	require.NoError(t, err)
	require.Empty(t, result.Suggestions)
}
