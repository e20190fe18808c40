package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_EmptyAddrDisables(t *testing.T) {
	c := New("", "", 0)

	assert.Nil(t, c)
	assert.False(t, c.Enabled())
}

func TestNilClient_FailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "room:1", []byte("{}"), time.Minute))
	data, err := c.Get(ctx, "room:1")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "room:1"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableServer_BehavesLikeMiss(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Error(t, c.Ping(ctx))
}

func TestNilClient_JSONHelpers(t *testing.T) {
	var c *Client
	ctx := context.Background()

	c.SetJSON(ctx, "room:1", map[string]string{"title": "Cabin"}, time.Minute)
	var dst map[string]string
	assert.False(t, c.GetJSON(ctx, "room:1", &dst))
	assert.Nil(t, dst)
}

func TestUnreachableServer_JSONMiss(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.SetJSON(ctx, "k", struct{ A int }{A: 1}, time.Minute)
	var dst struct{ A int }
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	assert.True(t, c.Enabled())
}
