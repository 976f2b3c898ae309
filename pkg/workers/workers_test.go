package workers

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcWorker struct {
	name  string
	start func(ctx context.Context) error
}

func (f funcWorker) Name() string                    { return f.name }
func (f funcWorker) Start(ctx context.Context) error { return f.start(ctx) }

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func TestGroup_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Group{
			funcWorker{name: "a", start: blockUntilDone},
			funcWorker{name: "b", start: blockUntilDone},
		}.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("group did not stop")
	}
}

func TestGroup_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")

	err := Group{
		funcWorker{name: "failing", start: func(context.Context) error { return boom }},
		funcWorker{name: "waiting", start: blockUntilDone},
	}.Start(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing: boom")
}

type fakeBot struct {
	started chan struct{}
}

func (f *fakeBot) Start(ctx context.Context) {
	close(f.started)
	<-ctx.Done()
}

func TestTelegramBot(t *testing.T) {
	b := &fakeBot{started: make(chan struct{})}
	w := NewTelegramBot(b)
	assert.Equal(t, "telegram_bot", w.Name())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	<-b.started
	cancel()
	assert.NoError(t, <-done)
}

func TestHTTPServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewHTTPServer(ln.Addr().String(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	assert.NoError(t, <-done)
}
