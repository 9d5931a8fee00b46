// Package browser bridges playwright browser sessions and plain HTTP
// clients: it converts playwright cookies into net/http form and installs
// resource-type request blocking on pages.
package browser

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/net/publicsuffix"
)

// Cookies converts playwright cookies to net/http cookies. Cookies missing a
// name or value are dropped.
func Cookies(cookies []playwright.Cookie) []*http.Cookie {
	out := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if c.Name == "" || c.Value == "" {
			continue
		}

		hc := &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
		if c.Expires > 0 {
			hc.Expires = time.Unix(int64(c.Expires), 0)
		}
		if c.SameSite != nil {
			switch *c.SameSite {
			case *playwright.SameSiteAttributeStrict:
				hc.SameSite = http.SameSiteStrictMode
			case *playwright.SameSiteAttributeLax:
				hc.SameSite = http.SameSiteLaxMode
			case *playwright.SameSiteAttributeNone:
				hc.SameSite = http.SameSiteNoneMode
			}
		}
		out = append(out, hc)
	}
	return out
}

// ContextCookies extracts the context's cookies, optionally filtered by URL,
// converted to net/http form.
func ContextCookies(ctx playwright.BrowserContext, urls ...string) ([]*http.Cookie, error) {
	cookies, err := ctx.Cookies(urls...)
	if err != nil {
		return nil, fmt.Errorf("reading browser cookies: %w", err)
	}
	return Cookies(cookies), nil
}

// PageCookies extracts cookies from the page's browser context, converted to
// net/http form.
func PageCookies(page playwright.Page, urls ...string) ([]*http.Cookie, error) {
	return ContextCookies(page.Context(), urls...)
}

// Jar builds a cookie jar pre-loaded with the given cookies under u, ready to
// hand to an http.Client so requests carry the browser's session.
func Jar(cookies []playwright.Cookie, u *url.URL) (http.CookieJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	jar.SetCookies(u, Cookies(cookies))
	return jar, nil
}
