package cache

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedGetOrCompute(t *testing.T) {
	t.Run("computes on miss and serves hits", func(t *testing.T) {
		c := NewKeyed[string, int](10, time.Minute)

		calls := 0
		compute := func() (int, error) {
			calls++
			return 42, nil
		}

		v, err := c.GetOrCompute("k", compute)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls)

		v, err = c.GetOrCompute("k", compute)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls, "second call should be served from cache")
	})

	t.Run("hit never invokes compute", func(t *testing.T) {
		c := NewKeyed[string, string](10, time.Minute)

		_, err := c.GetOrCompute("k", func() (string, error) { return "v", nil })
		require.NoError(t, err)

		v, err := c.GetOrCompute("k", func() (string, error) {
			panic("compute must not run on a hit")
		})
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c := NewKeyed[string, int](10, time.Minute)

		boom := errors.New("boom")
		_, err := c.GetOrCompute("k", func() (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		v, err := c.GetOrCompute("k", func() (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("distinct keys are independent", func(t *testing.T) {
		c := NewKeyed[int64, string](10, time.Minute)

		a, err := c.GetOrCompute(1, func() (string, error) { return "a", nil })
		require.NoError(t, err)
		b, err := c.GetOrCompute(2, func() (string, error) { return "b", nil })
		require.NoError(t, err)

		assert.Equal(t, "a", a)
		assert.Equal(t, "b", b)
		assert.Equal(t, 2, c.Len())
	})
}

func TestKeyedBounds(t *testing.T) {
	t.Run("evicts least recently used beyond the size bound", func(t *testing.T) {
		c := NewKeyed[int, int](3, time.Minute)

		for i := 0; i < 5; i++ {
			_, err := c.GetOrCompute(i, func() (int, error) { return i, nil })
			require.NoError(t, err)
		}

		assert.Equal(t, 3, c.Len())

		// The two oldest entries were evicted; recomputing them proves it.
		calls := 0
		for i := 0; i < 2; i++ {
			_, err := c.GetOrCompute(i, func() (int, error) {
				calls++
				return i, nil
			})
			require.NoError(t, err)
		}
		assert.Equal(t, 2, calls)
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c := NewKeyed[string, int](10, 20*time.Millisecond)

		calls := 0
		compute := func() (int, error) {
			calls++
			return 1, nil
		}

		_, err := c.GetOrCompute("k", compute)
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)

		_, err = c.GetOrCompute("k", compute)
		require.NoError(t, err)
		assert.Equal(t, 2, calls, "expired entry should be recomputed")
	})

	t.Run("non-positive arguments fall back to defaults", func(t *testing.T) {
		c := NewKeyed[string, int](0, 0)

		for i := 0; i < 50; i++ {
			k := fmt.Sprintf("k%d", i)
			_, err := c.GetOrCompute(k, func() (int, error) { return i, nil })
			require.NoError(t, err)
		}
		assert.Equal(t, 50, c.Len())
	})
}

func TestKeyedPurge(t *testing.T) {
	c := NewKeyed[string, int](10, time.Minute)

	_, err := c.GetOrCompute("a", func() (int, error) { return 1, nil })
	require.NoError(t, err)
	_, err = c.GetOrCompute("b", func() (int, error) { return 2, nil })
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	c.Purge()

	assert.Equal(t, 0, c.Len())
}
