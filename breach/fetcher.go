package breach

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/net"
)

const DefaultRangeURL = "https://api.pwnedpasswords.com/range"

//go:generate counterfeiter . RangeFetcher

// RangeFetcher returns the raw SUFFIX:COUNT body for a hash prefix. The prefix
// is all it ever receives, so it is all it can ever send.
type RangeFetcher interface {
	FetchRange(ctx context.Context, logger lager.Logger, prefix string) ([]byte, error)
}

type FetcherOption func(*rangeFetcher)

// WithPadding asks the service to pad responses with zero-count records so
// the response size does not reveal the prefix's popularity.
func WithPadding() FetcherOption {
	return func(f *rangeFetcher) {
		f.addPadding = true
	}
}

type rangeFetcher struct {
	rangeURL   string
	userAgent  string
	addPadding bool
	httpClient net.Client
}

func NewRangeFetcher(rangeURL string, userAgent string, httpClient net.Client, opts ...FetcherOption) RangeFetcher {
	f := &rangeFetcher{
		rangeURL:   strings.TrimRight(rangeURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *rangeFetcher) FetchRange(ctx context.Context, logger lager.Logger, prefix string) ([]byte, error) {
	logger = logger.Session("fetch-range", lager.Data{
		"prefix": prefix,
	})
	logger.Debug("starting")

	if !validPrefix(prefix) {
		err := fmt.Errorf("refusing to query with invalid prefix %q", prefix)
		logger.Error("failed", err)
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, "GET", f.rangeURL+"/"+prefix, nil)
	if err != nil {
		logger.Error("failed", err)
		return nil, &TransportError{Prefix: prefix, Err: err}
	}

	request.Header.Set("User-Agent", f.userAgent)
	if f.addPadding {
		request.Header.Set("Add-Padding", "true")
	}

	response, err := f.httpClient.Do(request)
	if err != nil {
		logger.Error("failed", err)
		return nil, &TransportError{Prefix: prefix, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		err := &TransportError{Prefix: prefix, StatusCode: response.StatusCode}
		logger.Error("failed", err, lager.Data{
			"status": fmt.Sprintf("%s (%d)", http.StatusText(response.StatusCode), response.StatusCode),
		})
		return nil, err
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Error("failed", err)
		return nil, &TransportError{Prefix: prefix, Err: err}
	}

	logger.Debug("done", lager.Data{
		"bytes": len(body),
	})
	return body, nil
}
