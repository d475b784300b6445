package graceful_shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWait_RunsCloseFuncsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGracefulShutdown(ctx)

	stopped := make(chan struct{})
	g.Go(func() error {
		<-stopped
		return nil
	})

	closed := false
	g.MustClose(func(ctx context.Context) error {
		closed = true
		close(stopped)
		return nil
	})

	cancel()
	if err := g.Wait(); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if !closed {
		t.Fatal("expected close func to run")
	}
}

func TestWait_ReturnsFirstError(t *testing.T) {
	g := NewGracefulShutdown(context.Background())
	boom := errors.New("listen failed")

	g.Go(func() error { return boom })

	if err := g.Wait(); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}

func TestGo_RecoversPanic(t *testing.T) {
	g := NewGracefulShutdown(context.Background())

	g.Go(func() error { panic("bad handler") })

	if err := g.Wait(); err == nil {
		t.Fatal("expected panic to surface as error")
	}
}

func TestClose_Timeout(t *testing.T) {
	g := &GracefulShutdown{}
	g.MustClose(func(ctx context.Context) error {
		time.Sleep(time.Second)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := g.close(ctx); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestSetTimeout_BoundsCloseFuncs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGracefulShutdown(ctx)
	g.SetTimeout(10 * time.Millisecond)

	g.MustClose(func(ctx context.Context) error {
		time.Sleep(time.Second)
		return nil
	})

	start := time.Now()
	cancel()
	if err := g.Wait(); err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed >= time.Second {
		t.Fatalf("expected Wait to return before the close func finished, took %s", elapsed)
	}
}
