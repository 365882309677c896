package net

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

type retryingClient struct {
	client     Client
	maxRetries int
}

// NewRetryingClient retries requests that fail to complete or that receive a
// 5xx response, up to maxRetries times. It is for callers that want a retry
// policy; nothing in this module retries on its own.
func NewRetryingClient(c Client, maxRetries int) Client {
	return &retryingClient{
		client:     c,
		maxRetries: maxRetries,
	}
}

var errRetriesExhausted = errors.New("request failed after retry")

func (c *retryingClient) Do(orgReq *http.Request) (*http.Response, error) {
	var body []byte
	if orgReq.Body != nil {
		var err error
		body, err = io.ReadAll(orgReq.Body)
		if err != nil {
			return nil, err
		}
	}

	ctx := orgReq.Context()
	lastErr := errRetriesExhausted

	for i := 0; i < c.maxRetries+1; i++ {
		if err := c.delayForAttempt(orgReq, i); err != nil {
			return nil, err
		}

		req := orgReq.Clone(ctx)
		if orgReq.Body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError && i < c.maxRetries {
			resp.Body.Close()
			lastErr = fmt.Errorf("bad response (5xx): %d", resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

var delays = [3][2]int{
	{250, 750},
	{375, 1125},
	{562, 1687},
}

func (c *retryingClient) delayForAttempt(req *http.Request, i int) error {
	if i == 0 {
		return nil
	}

	window := delays[len(delays)-1]
	if i-1 < len(delays) {
		window = delays[i-1]
	}

	random := rand.Intn(window[1]-window[0]) + window[0]

	timer := time.NewTimer(time.Duration(random) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-req.Context().Done():
		return req.Context().Err()
	}
}
