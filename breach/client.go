// Package breach checks candidate passwords against a breach corpus using a
// k-anonymity range query: only the first five hex characters of the
// password's SHA-1 ever leave the process.
package breach

import (
	"bytes"
	"context"

	"code.cloudfoundry.org/lager"
)

type BreachInfo struct {
	IsPwned         bool  `json:"pwned"`
	OccurrenceCount int64 `json:"occurrences"`
}

// Result is the outcome of an asynchronous lookup. A non-nil Err means the
// breach status is unknown; Info is meaningful only when Err is nil.
type Result struct {
	Info BreachInfo
	Err  error
}

type Client interface {
	Lookup(ctx context.Context, logger lager.Logger, candidate string) (BreachInfo, error)
	LookupAsync(ctx context.Context, logger lager.Logger, candidate string) <-chan Result
	IsPwned(ctx context.Context, logger lager.Logger, candidate string) (bool, error)
}

type client struct {
	fetcher RangeFetcher
}

func NewClient(fetcher RangeFetcher) Client {
	return &client{
		fetcher: fetcher,
	}
}

// Lookup performs one range query. It does not retry.
func (c *client) Lookup(ctx context.Context, logger lager.Logger, candidate string) (BreachInfo, error) {
	logger = logger.Session("lookup")

	if candidate == "" {
		return BreachInfo{}, nil
	}

	prefix, suffix, err := HashRange(candidate)
	if err != nil {
		logger.Error("failed", err)
		return BreachInfo{}, err
	}

	logger = logger.WithData(lager.Data{"prefix": prefix})
	logger.Debug("starting")

	body, err := c.fetcher.FetchRange(ctx, logger, prefix)
	if err != nil {
		logger.Error("failed", err)
		return BreachInfo{}, err
	}

	info, err := FindSuffix(bytes.NewReader(body), suffix)
	if err != nil {
		logger.Error("failed", err)
		return BreachInfo{}, err
	}

	logger.Debug("done", lager.Data{"pwned": info.IsPwned})
	return info, nil
}

// LookupAsync runs Lookup on its own goroutine. The channel receives exactly
// one Result and is then closed; it is buffered so an abandoned lookup never
// blocks. Cancel ctx to abandon the lookup.
func (c *client) LookupAsync(ctx context.Context, logger lager.Logger, candidate string) <-chan Result {
	results := make(chan Result, 1)

	go func() {
		defer close(results)

		info, err := c.Lookup(ctx, logger, candidate)
		results <- Result{Info: info, Err: err}
	}()

	return results
}

func (c *client) IsPwned(ctx context.Context, logger lager.Logger, candidate string) (bool, error) {
	info, err := c.Lookup(ctx, logger, candidate)
	if err != nil {
		return false, err
	}

	return info.IsPwned, nil
}
