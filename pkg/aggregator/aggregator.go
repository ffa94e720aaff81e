package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adrianliechti/suggest/pkg/suggester"

	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownSource = errors.New("unknown source")
)

type Provider struct {
	Source   suggester.Source
	Provider suggester.Provider
}

type Aggregator struct {
	providers []Provider
}

// New creates an aggregator over the given providers. The order of the
// providers determines the order of aggregated results.
func New(providers ...Provider) *Aggregator {
	return &Aggregator{
		providers: providers,
	}
}

func (a *Aggregator) Sources() []suggester.Source {
	var result []suggester.Source

	for _, p := range a.providers {
		result = append(result, p.Source)
	}

	return result
}

// Suggest queries a single provider and reports its failure to the caller.
func (a *Aggregator) Suggest(ctx context.Context, source suggester.Source, query string, options *suggester.SuggestOptions) (*suggester.Result, error) {
	for _, p := range a.providers {
		if p.Source != source {
			continue
		}

		result, err := suggest(ctx, p, query, options)

		if err != nil {
			if _, ok := suggester.FailedSource(err); !ok {
				err = suggester.NewFetchError(source, err)
			}

			return nil, err
		}

		return result, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
}

// SuggestAll queries every provider concurrently and returns the results of
// those that succeeded, in provider order. Failures are logged and dropped.
func (a *Aggregator) SuggestAll(ctx context.Context, query string, options *suggester.SuggestOptions) []suggester.Result {
	results := make([]*suggester.Result, len(a.providers))

	var g errgroup.Group

	for i, p := range a.providers {
		g.Go(func() error {
			result, err := suggest(ctx, p, query, options)

			if err != nil {
				slog.Warn("provider failed", "source", p.Source, "error", err)
				return nil
			}

			results[i] = result
			return nil
		})
	}

	g.Wait()

	list := make([]suggester.Result, 0, len(results))

	for _, r := range results {
		if r == nil {
			continue
		}

		list = append(list, *r)
	}

	return list
}

func suggest(ctx context.Context, p Provider, query string, options *suggester.SuggestOptions) (result *suggester.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = suggester.NewFetchError(p.Source, fmt.Errorf("panic: %v", r))
		}
	}()

	result, err = p.Provider.Suggest(ctx, query, options)

	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, suggester.NewFetchError(p.Source, errors.New("empty result"))
	}

	return result, nil
}
