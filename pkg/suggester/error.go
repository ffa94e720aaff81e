package suggester

import (
	"errors"
)

// FetchError reports that a provider could not deliver suggestions.
type FetchError struct {
	Source Source
	Err    error
}

func NewFetchError(source Source, err error) *FetchError {
	return &FetchError{
		Source: source,
		Err:    err,
	}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return string(e.Source) + ": fetch failed"
	}

	return string(e.Source) + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FailedSource returns the source carried by a FetchError in err's chain.
func FailedSource(err error) (Source, bool) {
	var fetchErr *FetchError

	if errors.As(err, &fetchErr) {
		return fetchErr.Source, true
	}

	return "", false
}
