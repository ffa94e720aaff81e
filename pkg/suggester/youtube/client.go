package youtube

import (
	"github.com/adrianliechti/suggest/pkg/suggester"
	"github.com/adrianliechti/suggest/pkg/suggester/google"
)

// New creates a client for the video search completion endpoint. It shares
// the response dialect of the web search endpoint and is configured with the
// same options.
func New(options ...google.Option) (*google.Client, error) {
	defaults := []google.Option{
		google.WithURL("http://google.com/complete/search"),
		google.WithSource(suggester.SourceYouTube),

		google.WithParam("client", "youtube"),
		google.WithParam("hjson", "t"),
		google.WithParam("ds", "yt"),
	}

	return google.New(append(defaults, options...)...)
}
