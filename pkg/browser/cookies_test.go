package browser

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookies(t *testing.T) {
	t.Run("converts fields", func(t *testing.T) {
		expires := float64(time.Date(2027, 1, 2, 3, 4, 5, 0, time.UTC).Unix())
		in := []playwright.Cookie{{
			Name:     "session",
			Value:    "abc123",
			Domain:   "example.com",
			Path:     "/",
			Expires:  expires,
			Secure:   true,
			HttpOnly: true,
			SameSite: playwright.SameSiteAttributeLax,
		}}

		out := Cookies(in)
		require.Len(t, out, 1)

		c := out[0]
		assert.Equal(t, "session", c.Name)
		assert.Equal(t, "abc123", c.Value)
		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, int64(expires), c.Expires.Unix())
	})

	t.Run("drops cookies without name or value", func(t *testing.T) {
		in := []playwright.Cookie{
			{Name: "", Value: "v"},
			{Name: "n", Value: ""},
			{Name: "keep", Value: "me"},
		}

		out := Cookies(in)
		require.Len(t, out, 1)
		assert.Equal(t, "keep", out[0].Name)
	})

	t.Run("session cookie has zero expiry", func(t *testing.T) {
		out := Cookies([]playwright.Cookie{{Name: "n", Value: "v", Expires: -1}})
		require.Len(t, out, 1)
		assert.True(t, out[0].Expires.IsZero())
	})
}

func TestJar(t *testing.T) {
	u, err := url.Parse("https://example.com/")
	require.NoError(t, err)

	jar, err := Jar([]playwright.Cookie{
		{Name: "session", Value: "abc123", Domain: "example.com", Path: "/"},
		{Name: "", Value: "dropped"},
	}, u)
	require.NoError(t, err)

	got := jar.Cookies(u)
	require.Len(t, got, 1)
	assert.Equal(t, "session", got[0].Name)
	assert.Equal(t, "abc123", got[0].Value)
}
