package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKey(t *testing.T) {
	require.Equal(t, "catalog:session:abc:num_visits", key("abc"))
}

func TestCounter_Visit_Errors(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewCounter(rdb, time.Hour, zap.NewNop())

	_, err := c.Visit(context.Background(), "")
	require.EqualError(t, err, "empty session id")

	n, err := c.Visit(context.Background(), "abc")
	require.Error(t, err)
	require.Zero(t, n)
}

func TestCounter_Visit(t *testing.T) {
	const ttl = 2 * time.Hour
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewCounter(rdb, ttl, zap.NewNop())

	tests := []struct {
		name    string
		session string
		want    int
	}{
		{name: "first visit", session: "a", want: 0},
		{name: "second visit", session: "a", want: 1},
		{name: "other session", session: "b", want: 0},
		{name: "third visit", session: "a", want: 2},
		{name: "other session again", session: "b", want: 1},
	}
	ctx := context.Background()
	for _, tt := range tests {
		n, err := c.Visit(ctx, tt.session)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, n, tt.name)
		require.Equal(t, ttl, mr.TTL(key(tt.session)), tt.name)
	}
}
