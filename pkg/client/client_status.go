package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/adrianliechti/suggest/server/api"
)

type StatusService struct {
	Options []RequestOption
}

func NewStatusService(opts ...RequestOption) StatusService {
	return StatusService{
		Options: opts,
	}
}

type StatusCheck = api.StatusCheck

type StatusRequest struct {
	ClientName string
}

func (r *StatusService) New(ctx context.Context, input StatusRequest, opts ...RequestOption) (*StatusCheck, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	body, _ := json.Marshal(api.StatusCheckCreate{
		ClientName: input.ClientName,
	})

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/api/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result StatusCheck

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *StatusService) List(ctx context.Context, opts ...RequestOption) ([]StatusCheck, error) {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/api/status", nil)

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result []StatusCheck

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
