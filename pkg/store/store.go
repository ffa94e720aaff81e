package store

import (
	"context"
	"errors"
	"time"
)

// MaxList is the maximum number of status checks returned by a listing.
const MaxList = 1000

var (
	ErrConflict     = errors.New("status check already exists")
	ErrInvalidInput = errors.New("invalid client name")
)

type Provider interface {
	CreateStatusCheck(ctx context.Context, clientName string) (*StatusCheck, error)
	ListStatusChecks(ctx context.Context, options *ListOptions) ([]StatusCheck, error)
}

type ListOptions struct {
	Limit *int
}

type StatusCheck struct {
	ID string

	ClientName string
	Timestamp  time.Time
}

// Limit returns the effective listing limit for the given options.
func Limit(options *ListOptions) int {
	if options == nil || options.Limit == nil || *options.Limit <= 0 || *options.Limit > MaxList {
		return MaxList
	}

	return *options.Limit
}
