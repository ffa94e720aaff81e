package api

import (
	"net/http"
	"strconv"
	"strings"
)

func valueQuery(r *http.Request) string {
	if val := r.URL.Query().Get("q"); strings.TrimSpace(val) != "" {
		return val
	}

	return ""
}

func valueLimit(r *http.Request) *int {
	if val := r.URL.Query().Get("limit"); val != "" {
		if val, err := strconv.Atoi(val); err == nil && val > 0 {
			return &val
		}
	}

	return nil
}
