package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestServer_Serves_Until_Cancelled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	server := NewServer(log, listener.Addr().String(), handler, time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, listener) }()

	// Given the server is up
	var resp *http.Response
	req.Eventually(func() bool {
		resp, err = http.Get("http://" + listener.Addr().String())
		return err == nil
	}, time.Second, 10*time.Millisecond)
	_ = resp.Body.Close()
	req.Equal(http.StatusTeapot, resp.StatusCode)

	// When the context is cancelled
	cancel()

	// Then it shuts down cleanly
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Listen_Failure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	defer taken.Close()

	err = NewServer(log, taken.Addr().String(), http.NotFoundHandler(), time.Second).Run(context.Background())

	req.Error(err)
}
