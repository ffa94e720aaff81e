package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/suggest/pkg/aggregator"
	"github.com/adrianliechti/suggest/pkg/suggester"

	"github.com/go-chi/chi/v5"
)

var errMissingQuery = errors.New("missing query parameter: q")

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	source, ok := suggester.ParseSource(chi.URLParam(r, "source"))

	if !ok {
		writeError(w, http.StatusNotFound, nil)
		return
	}

	query := valueQuery(r)

	if query == "" {
		writeError(w, http.StatusBadRequest, errMissingQuery)
		return
	}

	options := &suggester.SuggestOptions{
		Limit: valueLimit(r),
	}

	result, err := h.aggregator.Suggest(r.Context(), source, query, options)

	if err != nil {
		if errors.Is(err, aggregator.ErrUnknownSource) {
			writeError(w, http.StatusNotFound, nil)
			return
		}

		slog.Error("suggestion request failed", "source", source, "error", err)

		writeError(w, http.StatusInternalServerError, errors.New("Failed to fetch "+source.Name()+" suggestions"))
		return
	}

	writeJson(w, toSuggestionResult(*result))
}

func (h *Handler) handleSuggestAll(w http.ResponseWriter, r *http.Request) {
	query := valueQuery(r)

	if query == "" {
		writeError(w, http.StatusBadRequest, errMissingQuery)
		return
	}

	options := &suggester.SuggestOptions{
		Limit: valueLimit(r),
	}

	results := h.aggregator.SuggestAll(r.Context(), query, options)

	list := make([]SuggestionResult, 0, len(results))

	for _, result := range results {
		list = append(list, toSuggestionResult(result))
	}

	writeJson(w, list)
}

func toSuggestionResult(result suggester.Result) SuggestionResult {
	suggestions := result.Suggestions

	if suggestions == nil {
		suggestions = []string{}
	}

	return SuggestionResult{
		Query:  result.Query,
		Source: string(result.Source),

		Suggestions: suggestions,
	}
}
