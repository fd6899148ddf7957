package httpserver_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/httpserver"
)

const localAddr = "127.0.0.1:0"

var client = &http.Client{
	Timeout:   time.Second,
	Transport: &http.Transport{DisableKeepAlives: true},
}

// startHook returns a hook that closes the returned channel once.
func startHook() (httpserver.Hook, <-chan struct{}) {
	ch := make(chan struct{})
	return func(context.Context, *slog.Logger) { close(ch) }, ch
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()
	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(hook),
	)
	assert.Nil(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) }))
	}()
	<-started

	addr := srv.Addr()
	require.NotNil(t, addr)
	resp, err := client.Get("http://" + addr.String())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	waitDone(t, done)
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()
	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(hook),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), http.NewServeMux()) }()
	<-started
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
	waitDone(t, done)
}

func TestStartError(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(":invalid"))
	err := srv.Run(context.Background(), http.NewServeMux())
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestStartError_AddressInUse(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", localAddr)
	require.NoError(t, err)
	defer ln.Close()

	var buf bytes.Buffer
	srv := httpserver.New(
		httpserver.WithAddr(ln.Addr().String()),
		httpserver.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
	)
	err = srv.Run(context.Background(), http.NewServeMux())
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.Contains(t, buf.String(), "listen failed")
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestHooks(t *testing.T) {
	t.Parallel()
	var started, stopped atomic.Bool
	hook, ready := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithStartHook(func(context.Context, *slog.Logger) { started.Store(true) }),
		httpserver.WithStartHook(hook),
		httpserver.WithStopHook(func(context.Context, *slog.Logger) { stopped.Store(true) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, http.NewServeMux()) }()
	<-ready
	assert.NotNil(t, srv.Addr(), "listener bound before start hooks")
	cancel()
	waitDone(t, done)
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")

	assert.True(t, started.Load(), "start hook not executed")
	assert.True(t, stopped.Load(), "stop hook not executed")
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()
	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(hook),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), http.NewServeMux()) }()
	<-started

	err := srv.Run(context.Background(), http.NewServeMux())
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestDoubleShutdown(t *testing.T) {
	t.Parallel()
	var stops atomic.Int32
	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(hook),
		httpserver.WithStopHook(func(context.Context, *slog.Logger) { stops.Add(1) }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), http.NewServeMux()) }()
	<-started
	require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
	waitDone(t, done)
	assert.Equal(t, int32(1), stops.Load())
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	var stops atomic.Int32
	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(hook),
		httpserver.WithStopHook(func(context.Context, *slog.Logger) { stops.Add(1) }),
	)
	require.NoError(t, srv.Shutdown(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, http.NewServeMux()) }()
	<-started
	cancel()
	waitDone(t, done)
	assert.Equal(t, int32(1), stops.Load())
}

func TestWithServer(t *testing.T) {
	t.Parallel()
	hs := &http.Server{ReadTimeout: time.Second}
	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithServer(hs),
		httpserver.WithAddr(localAddr),
		httpserver.WithReadTimeout(5*time.Second),
		httpserver.WithStartHook(hook),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), http.NewServeMux()) }()
	<-started
	assert.Equal(t, time.Second, hs.ReadTimeout, "preset timeout must win")
	assert.Equal(t, localAddr, hs.Addr, "address not set")
	assert.NotNil(t, hs.Handler, "handler not set")
	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

// Not parallel: SIGTERM reaches every server running in the process.
func TestSignalShutdown(t *testing.T) {
	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(hook),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), http.NewServeMux()) }()
	<-started

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(syscall.SIGTERM))
	waitDone(t, done)
}

func TestLogging(t *testing.T) {
	t.Parallel()
	var (
		mu  sync.Mutex
		buf bytes.Buffer
	)
	w := writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return buf.Write(p)
	})

	hook, started := startHook()
	srv := httpserver.New(
		httpserver.WithAddr(localAddr),
		httpserver.WithLogger(slog.New(slog.NewJSONHandler(w, nil))),
		httpserver.WithStartHook(hook),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, http.NewServeMux()) }()
	<-started
	cancel()
	waitDone(t, done)

	mu.Lock()
	out := buf.String()
	mu.Unlock()
	assert.Contains(t, out, `"msg":"listening"`)
	assert.Contains(t, out, srv.Addr().String())
	assert.Contains(t, out, `"msg":"shutting down"`)
	assert.Contains(t, out, `"msg":"server stopped"`)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"write", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"server", func() { httpserver.WithServer(nil) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}

	t.Run("logger nil allowed", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
	})
}

func TestOptionsApply(t *testing.T) {
	t.Parallel()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	hs := &http.Server{}
	gotLogger := make(chan *slog.Logger, 1)
	srv := httpserver.New(
		httpserver.WithServer(hs),
		httpserver.WithAddr(localAddr),
		httpserver.WithReadTimeout(time.Second),
		httpserver.WithWriteTimeout(2*time.Second),
		httpserver.WithIdleTimeout(3*time.Second),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithLogger(l),
		httpserver.WithStartHook(func(_ context.Context, lg *slog.Logger) { gotLogger <- lg }),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()
	logger := <-gotLogger
	assert.Equal(t, localAddr, hs.Addr, "addr option not applied")
	assert.Equal(t, time.Second, hs.ReadTimeout, "read timeout not applied")
	assert.Equal(t, 2*time.Second, hs.WriteTimeout, "write timeout not applied")
	assert.Equal(t, 3*time.Second, hs.IdleTimeout, "idle timeout not applied")
	assert.Equal(t, l, logger, "logger option not applied")
	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := httpserver.Config{Host: "127.0.0.1", Port: 0, ShutdownTimeout: 50 * time.Millisecond}
	assert.Equal(t, "127.0.0.1:0", cfg.Addr())
	assert.Equal(t, "0.0.0.0:8000", httpserver.Config{Host: "0.0.0.0", Port: 8000}.Addr())
	assert.Equal(t, "[::1]:8000", httpserver.Config{Host: "::1", Port: 8000}.Addr())

	hook, started := startHook()
	srv := httpserver.NewFromConfig(cfg, httpserver.WithStartHook(hook))
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), http.NewServeMux()) }()
	<-started

	tcp, ok := srv.Addr().(*net.TCPAddr)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1", tcp.IP.String())
	assert.NotZero(t, tcp.Port)
	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
