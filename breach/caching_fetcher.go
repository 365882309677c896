package breach

import (
	"container/list"
	"context"
	"sync"

	"code.cloudfoundry.org/lager"
	"golang.org/x/sync/singleflight"
)

type cachingFetcher struct {
	fetcher RangeFetcher
	size    int
	group   singleflight.Group

	mu      sync.Mutex
	order   *list.List
	entries map[string]*list.Element
}

type cacheEntry struct {
	prefix string
	body   []byte
}

// NewCachingRangeFetcher keeps the most recently used size range bodies,
// keyed by prefix. Concurrent fetches of the same prefix share one request,
// which is not cancelled when a waiting caller gives up. Failures are not
// cached.
func NewCachingRangeFetcher(fetcher RangeFetcher, size int) RangeFetcher {
	return &cachingFetcher{
		fetcher: fetcher,
		size:    size,
		order:   list.New(),
		entries: map[string]*list.Element{},
	}
}

func (c *cachingFetcher) FetchRange(ctx context.Context, logger lager.Logger, prefix string) ([]byte, error) {
	logger = logger.Session("cached-fetch-range", lager.Data{
		"prefix": prefix,
	})

	if body, ok := c.get(prefix); ok {
		logger.Debug("hit")
		return body, nil
	}

	// The shared request outlives any one caller. The transport timeouts
	// bound it.
	results := c.group.DoChan(prefix, func() (interface{}, error) {
		body, err := c.fetcher.FetchRange(context.Background(), logger, prefix)
		if err != nil {
			return nil, err
		}

		c.put(prefix, body)
		return body, nil
	})

	select {
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}

		logger.Debug("miss", lager.Data{"shared": result.Shared})
		return result.Val.([]byte), nil
	case <-ctx.Done():
		err := &TransportError{Prefix: prefix, Err: ctx.Err()}
		logger.Error("failed", err)
		return nil, err
	}
}

func (c *cachingFetcher) get(prefix string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.entries[prefix]
	if !ok {
		return nil, false
	}

	c.order.MoveToFront(element)
	return element.Value.(*cacheEntry).body, true
}

func (c *cachingFetcher) put(prefix string, body []byte) {
	if c.size <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.entries[prefix]; ok {
		element.Value.(*cacheEntry).body = body
		c.order.MoveToFront(element)
		return
	}

	c.entries[prefix] = c.order.PushFront(&cacheEntry{prefix: prefix, body: body})

	for c.order.Len() > c.size {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).prefix)
	}
}
