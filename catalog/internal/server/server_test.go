package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/config"
	"github.com/stretchr/testify/require"
)

func TestServer_RunStop(t *testing.T) {
	srv := NewServer(config.HTTPServer{
		Host:         "127.0.0.1",
		Port:         "0",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}, http.NotFoundHandler())
	require.Equal(t, "127.0.0.1:0", srv.Addr())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// Shutdown makes ListenAndServe return ErrServerClosed, which Run swallows.
	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Stop(ctx) == nil
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, <-done)
}
