package api

import (
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/suggest/config"
	"github.com/adrianliechti/suggest/pkg/aggregator"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config

	aggregator *aggregator.Aggregator
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,

		aggregator: cfg.Aggregator(),
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleRoot)

	r.Get("/suggestions/all", h.handleSuggestAll)
	r.Get("/suggestions/{source}", h.handleSuggest)

	r.Get("/status", h.handleStatusList)
	r.Post("/status", h.handleStatusCreate)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJson(w, Message{
		Message: "Keyword Suggestion API",
	})
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(ErrorResponse{
		Detail: text,
	})
}
