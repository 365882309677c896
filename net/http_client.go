package net

import (
	"context"
	stdnet "net"
	"net/http"
	"time"
)

// NewHTTPClient builds a client that gives up on establishing a connection
// (TCP and TLS) after connectTimeout, and on any single read from the
// connection after readTimeout. Connections are never reused.
func NewHTTPClient(connectTimeout, readTimeout time.Duration) *http.Client {
	dialer := &stdnet.Dialer{
		Timeout: connectTimeout,
	}

	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: func(ctx context.Context, network, addr string) (stdnet.Conn, error) {
				conn, err := dialer.DialContext(ctx, network, addr)
				if err != nil {
					return nil, err
				}

				return &readDeadlineConn{
					Conn:        conn,
					readTimeout: readTimeout,
				}, nil
			},
			TLSHandshakeTimeout:   connectTimeout,
			ResponseHeaderTimeout: readTimeout,
			DisableKeepAlives:     true,
		},
	}
}

type readDeadlineConn struct {
	stdnet.Conn
	readTimeout time.Duration
}

func (c *readDeadlineConn) Read(b []byte) (int, error) {
	if c.readTimeout > 0 {
		if err := c.Conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return 0, err
		}
	}

	return c.Conn.Read(b)
}
