package bot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout   = 60 * time.Second
	maxResponseBytes = 10 << 20 // 10 MiB
)

// Exchange is one outgoing HTTP request with a fully encoded body.
type Exchange struct {
	URL    string
	Header http.Header
	Body   []byte
}

// Transport performs HTTP exchanges for a Bot. Implementations own
// connection pooling, proxies, TLS and timeouts.
type Transport interface {
	Execute(ctx context.Context, ex *Exchange) (status int, body []byte, err error)
}

// HTTPTransport is the default Transport on top of *http.Client.
type HTTPTransport struct {
	client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport wraps client. A nil client gets a 60s timeout.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPTransport{client: client}
}

// Execute POSTs the exchange and returns the status and body.
func (t *HTTPTransport) Execute(ctx context.Context, ex *Exchange) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ex.URL, bytes.NewReader(ex.Body))
	if err != nil {
		return 0, nil, stripURL(err)
	}
	for k, vs := range ex.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, stripURL(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// stripURL drops the token-bearing URL that net/http puts in its errors.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
