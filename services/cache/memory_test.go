package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	// Miss on an unknown key
	_, err := c.Get("missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// Set a value
	err = c.Set("test_key", []byte("test_value"), time.Minute)
	assert.NoError(t, err)

	// Get the value
	value, err := c.Get("test_key")
	assert.NoError(t, err)
	assert.Equal(t, "test_value", string(value))

	// Delete the value
	err = c.Delete("test_key")
	assert.NoError(t, err)

	// Try to get the deleted value
	_, err = c.Get("test_key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := NewMemoryCache()

	err := c.Set("short_lived", []byte("v"), 10*time.Millisecond)
	assert.NoError(t, err)

	_, err = c.Get("short_lived")
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = c.Get("short_lived")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
