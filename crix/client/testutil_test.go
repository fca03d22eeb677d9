package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeExchange is a minimal CRIX server for tests. Handlers are keyed by
// path; every request is recorded so tests can assert call counts and
// issuance order.
type fakeExchange struct {
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []recordedRequest
	srv      *httptest.Server
}

type recordedRequest struct {
	Path   string
	Header http.Header
	Body   []byte
}

func newFakeExchange(t *testing.T) *fakeExchange {
	t.Helper()
	f := &fakeExchange{handlers: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{Path: r.URL.Path, Header: r.Header.Clone(), Body: body})
		h, ok := f.handlers[r.URL.Path]
		f.mu.Unlock()
		if !ok {
			http.Error(w, fmt.Sprintf("no handler for %s", r.URL.Path), http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// handleJSON registers a handler answering with a fixed JSON document.
func (f *fakeExchange) handleJSON(path string, doc any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[path] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// handle registers a custom handler.
func (f *fakeExchange) handle(path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[path] = h
}

// calls returns how many requests hit a path.
func (f *fakeExchange) calls(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, req := range f.requests {
		if req.Path == path {
			n++
		}
	}
	return n
}

// paths returns the request paths in issuance order.
func (f *fakeExchange) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.requests))
	for _, req := range f.requests {
		out = append(out, req.Path)
	}
	return out
}

// bodies returns the raw request bodies sent to a path, in order.
func (f *fakeExchange) bodies(path string) [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]byte
	for _, req := range f.requests {
		if req.Path == path {
			out = append(out, req.Body)
		}
	}
	return out
}

func (f *fakeExchange) client() *Client {
	c := NewClient("mvp")
	c.SetHTTPClient(resty.New().SetBaseURL(f.srv.URL))
	return c
}

func (f *fakeExchange) authClient(token, secret string) *AuthClient {
	a := NewAuthClient(token, secret, "mvp")
	a.SetHTTPClient(resty.New().SetBaseURL(f.srv.URL))
	return a
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// marketDoc builds an /info/symbols response document.
func marketDoc(symbols ...map[string]any) map[string]any {
	return map[string]any{"symbol": symbols}
}

func symbolDoc(name, base, quote string) map[string]any {
	return map[string]any{
		"symbolName":     name,
		"baseCurrency":   base,
		"quoteCurrency":  quote,
		"basePrecision":  8,
		"quotePrecision": 2,
		"minLotSize":     "0.0001",
		"maxLotSize":     "1000",
		"tickSize":       "0.01",
	}
}
