package proxy

import (
	"net/url"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// RotatingProxy cycles through a fixed, non-empty list of static proxies.
// The cursor wraps around after the last element; rotation never consumes.
//
// Every conversion call (URL, Playwright, ClientProxy) advances the cursor by
// one. Callers that need the same endpoint in more than one format should
// call Next once and convert the returned StaticProxy instead.
type RotatingProxy struct {
	mu      sync.Mutex
	proxies []StaticProxy
	index   int
}

// NewRotatingProxy builds a rotator over the given proxies. The list must be
// non-empty.
func NewRotatingProxy(proxies []StaticProxy) (*RotatingProxy, error) {
	if len(proxies) == 0 {
		return nil, ErrEmptyProxyList
	}
	return &RotatingProxy{proxies: append([]StaticProxy(nil), proxies...)}, nil
}

// Next returns the proxy at the cursor and advances the cursor by one,
// wrapping modulo the list length. Safe for concurrent use.
func (r *RotatingProxy) Next() StaticProxy {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.proxies[r.index]
	r.index = (r.index + 1) % len(r.proxies)
	return p
}

// Len returns the number of proxies in the pool.
func (r *RotatingProxy) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.proxies)
}

// URL advances the rotation and returns the selected endpoint's URL.
func (r *RotatingProxy) URL() *url.URL {
	return r.Next().URL()
}

// Playwright advances the rotation and returns the selected endpoint's
// playwright descriptor.
func (r *RotatingProxy) Playwright() playwright.Proxy {
	return r.Next().Playwright()
}

// ClientProxy advances the rotation and returns the selected endpoint's HTTP
// client descriptor.
func (r *RotatingProxy) ClientProxy() ClientProxy {
	return r.Next().ClientProxy()
}
