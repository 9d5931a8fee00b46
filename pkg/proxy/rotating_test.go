package proxy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() []StaticProxy {
	return []StaticProxy{
		{Scheme: SchemeHTTP, Host: "a", Port: 1},
		{Scheme: SchemeHTTP, Host: "b", Port: 2},
		{Scheme: SchemeHTTP, Host: "c", Port: 3},
	}
}

func TestNewRotatingProxy(t *testing.T) {
	t.Run("rejects empty list", func(t *testing.T) {
		_, err := NewRotatingProxy(nil)
		assert.ErrorIs(t, err, ErrEmptyProxyList)
	})

	t.Run("copies the input slice", func(t *testing.T) {
		pool := testPool()
		r, err := NewRotatingProxy(pool)
		require.NoError(t, err)

		pool[0].Host = "mutated"
		assert.Equal(t, "a", r.Next().Host)
	})
}

func TestRotatingProxyNext(t *testing.T) {
	r, err := NewRotatingProxy(testPool())
	require.NoError(t, err)

	var hosts []string
	for i := 0; i < 4; i++ {
		hosts = append(hosts, r.Next().Host)
	}
	assert.Equal(t, []string{"a", "b", "c", "a"}, hosts)
}

func TestRotatingProxyConversionsAdvance(t *testing.T) {
	r, err := NewRotatingProxy(testPool())
	require.NoError(t, err)

	assert.Equal(t, "http://a:1", r.URL().String())
	assert.Equal(t, "http://b:2", r.Playwright().Server)
	assert.Equal(t, "http://c:3", r.ClientProxy().Server)
	assert.Equal(t, "http://a:1", r.URL().String())
}

func TestRotatingProxyConcurrentNext(t *testing.T) {
	r, err := NewRotatingProxy(testPool())
	require.NoError(t, err)

	const rounds = 100
	results := make(chan string, rounds*r.Len())

	var wg sync.WaitGroup
	for i := 0; i < rounds*r.Len(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- r.Next().Host
		}()
	}
	wg.Wait()
	close(results)

	counts := make(map[string]int)
	for host := range results {
		counts[host]++
	}

	// Round-robin under the mutex hands out each element the same number of
	// times; no element is skipped or served twice in one slot.
	assert.Equal(t, map[string]int{"a": rounds, "b": rounds, "c": rounds}, counts)
}
