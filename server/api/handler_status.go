package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/suggest/pkg/store"
)

func (h *Handler) handleStatusCreate(w http.ResponseWriter, r *http.Request) {
	s, err := h.Store()

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var input StatusCheckCreate

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(input.ClientName) == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing field: client_name"))
		return
	}

	check, err := s.CreateStatusCheck(r.Context(), input.ClientName)

	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, toStatusCheck(*check))
}

func (h *Handler) handleStatusList(w http.ResponseWriter, r *http.Request) {
	s, err := h.Store()

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	options := &store.ListOptions{
		Limit: valueLimit(r),
	}

	checks, err := s.ListStatusChecks(r.Context(), options)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result := make([]StatusCheck, 0, len(checks))

	for _, c := range checks {
		result = append(result, toStatusCheck(c))
	}

	writeJson(w, result)
}

func toStatusCheck(c store.StatusCheck) StatusCheck {
	return StatusCheck{
		ID: c.ID,

		ClientName: c.ClientName,
		Timestamp:  c.Timestamp,
	}
}
