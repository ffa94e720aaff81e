package google_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adrianliechti/suggest/pkg/suggester"
	"github.com/adrianliechti/suggest/pkg/suggester/google"

	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	var received *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r

		w.Header().Set("Content-Type", "text/javascript")
		fmt.Fprint(w, `window.google.ac.h([[["c++ <b>tutorial</b>",0],["c++ reference",0]],{}])`)
	}))

	defer server.Close()

	c, err := google.New(google.WithURL(server.URL + "/complete/search"))
	require.NoError(t, err)

	result, err := c.Suggest(context.Background(), "c++ & ü", nil)
	require.NoError(t, err)

	require.Equal(t, "c++ & ü", result.Query)
	require.Equal(t, suggester.SourceGoogle, result.Source)
	require.Equal(t, []string{"c++ tutorial", "c++ reference"}, result.Suggestions)

	require.NotNil(t, received)
	require.Equal(t, "/complete/search", received.URL.Path)
	require.Equal(t, "c++ & ü", received.URL.Query().Get("q"))
	require.Equal(t, "gws-wiz", received.URL.Query().Get("client"))
	require.Equal(t, "en", received.URL.Query().Get("hl"))
	require.Contains(t, received.URL.RawQuery, "q=c%2B%2B+%26+%C3%BC")
	require.Equal(t, suggester.UserAgent, received.Header.Get("User-Agent"))
}

func TestSuggestCharset(t *testing.T) {
	tests := map[string]struct {
		contentType string
		body        string
	}{
		"latin1": {
			contentType: "text/javascript; charset=ISO-8859-1",
			body:        "window.google.ac.h([[[\"caf\xe9\",0]]])",
		},
		"utf8": {
			contentType: "text/javascript; charset=UTF-8",
			body:        `window.google.ac.h([[["café",0]]])`,
		},
		"undeclared utf8": {
			contentType: "text/javascript",
			body:        `window.google.ac.h([[["café",0]]])`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", test.contentType)
				fmt.Fprint(w, test.body)
			}))

			defer server.Close()

			c, err := google.New(google.WithURL(server.URL))
			require.NoError(t, err)

			result, err := c.Suggest(context.Background(), "caf", nil)
			require.NoError(t, err)
			require.Equal(t, []string{"café"}, result.Suggestions)
		})
	}
}

func TestSuggestTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []string

		for i := range 15 {
			items = append(items, fmt.Sprintf(`"item %d"`, i))
		}

		fmt.Fprintf(w, `["q",[%s]]`, strings.Join(items, ","))
	}))

	defer server.Close()

	c, err := google.New(google.WithURL(server.URL))
	require.NoError(t, err)

	result, err := c.Suggest(context.Background(), "q", nil)
	require.NoError(t, err)

	require.Len(t, result.Suggestions, suggester.MaxSuggestions)
	require.Equal(t, "q", result.Suggestions[0])
	require.Equal(t, "item 8", result.Suggestions[9])
}

func TestSuggestUnparsableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "<html>sorry</html>")
	}))

	defer server.Close()

	c, err := google.New(google.WithURL(server.URL))
	require.NoError(t, err)

	result, err := c.Suggest(context.Background(), "golang", nil)
	require.NoError(t, err)

	require.Equal(t, "golang", result.Query)
	require.NotNil(t, result.Suggestions)
	require.Empty(t, result.Suggestions)
}

func TestSuggestTimeout(t *testing.T) {
	done := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))

	defer server.Close()
	defer close(done)

	c, err := google.New(google.WithURL(server.URL), google.WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.Suggest(context.Background(), "golang", nil)
	require.Error(t, err)

	source, ok := suggester.FailedSource(err)
	require.True(t, ok)
	require.Equal(t, suggester.SourceGoogle, source)
}

func TestSuggestConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := google.New(google.WithURL(url))
	require.NoError(t, err)

	result, err := c.Suggest(context.Background(), "golang", nil)
	require.Error(t, err)
	require.Nil(t, result)

	var fetchErr *suggester.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, suggester.SourceGoogle, fetchErr.Source)
}
