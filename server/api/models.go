package api

import (
	"time"
)

type Message struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type SuggestionResult struct {
	Query  string `json:"query"`
	Source string `json:"source"`

	Suggestions []string `json:"suggestions"`
}

type StatusCheck struct {
	ID string `json:"id"`

	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name"`
}
