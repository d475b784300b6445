// Package graceful_shutdown runs long-lived functions until the first of them
// fails or the process receives SIGINT, SIGTERM or SIGQUIT, then runs the
// registered close functions.
package graceful_shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.alis.build/alog"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 30 * time.Second

type closeFunc func(ctx context.Context) error

type GracefulShutdown struct {
	mu         sync.Mutex
	ctx        context.Context
	errGroup   *errgroup.Group
	closeFuncs []closeFunc
	timeout    time.Duration
}

// ErrSignal is returned by Wait when shutdown was triggered by an OS signal.
var ErrSignal = errors.New("received signal from OS")

func NewGracefulShutdown(parentCtx context.Context) *GracefulShutdown {
	g, ctx := errgroup.WithContext(parentCtx)
	gfl := &GracefulShutdown{
		ctx:      ctx,
		errGroup: g,
		timeout:  defaultShutdownTimeout,
	}

	gfl.Go(gfl.listenerOS)
	gfl.Go(gfl.killer)

	return gfl
}

// SetTimeout bounds how long the close functions may run.
func (g *GracefulShutdown) SetTimeout(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.timeout = d
}

func (g *GracefulShutdown) Go(foo func() error) {
	g.errGroup.Go(func() (err error) {
		defer func() {
			if errPanic := recover(); errPanic != nil {
				err = fmt.Errorf("panic in graceful shutdown: %v", errPanic)
				alog.Errorf(g.ctx, "panic in graceful shutdown: %v", errPanic)
			}
		}()

		return foo()
	})
}

// Wait blocks until every function returned and returns the first error.
// A shutdown caused by a signal returns nil.
func (g *GracefulShutdown) Wait() error {
	err := g.errGroup.Wait()
	if err != nil && !errors.Is(err, ErrSignal) {
		alog.Errorf(context.Background(), "error in graceful shutdown: %v", err)
		return err
	}
	return nil
}

func (g *GracefulShutdown) MustClose(f closeFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closeFuncs = append(g.closeFuncs, f)
}

func (g *GracefulShutdown) listenerOS() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(ch)

	select {
	case <-g.ctx.Done():
		return nil
	case signalFromOS := <-ch:
		alog.Infof(g.ctx, "received signal from OS: %s", signalFromOS)
		return fmt.Errorf("%w: %s", ErrSignal, signalFromOS)
	}
}

func (g *GracefulShutdown) killer() error {
	<-g.ctx.Done()

	g.mu.Lock()
	timeout := g.timeout
	g.mu.Unlock()

	ctx, cancelTimeout := context.WithTimeout(context.Background(), timeout)
	defer cancelTimeout()

	return g.close(ctx)
}

func (g *GracefulShutdown) close(ctx context.Context) error {
	g.mu.Lock()
	funcs := append([]closeFunc(nil), g.closeFuncs...)
	g.mu.Unlock()

	closeErrMessages := make([]string, 0, len(funcs))
	complete := make(chan struct{}, 1)

	go func() {
		for _, closeFunc := range funcs {
			if err := closeFunc(ctx); err != nil {
				closeErrMessages = append(closeErrMessages, fmt.Sprintf("error closing: %v", err))
			}
		}
		complete <- struct{}{}
	}()

	select {
	case <-complete:
	case <-ctx.Done():
		return fmt.Errorf("timeout closing")
	}

	if len(closeErrMessages) > 0 {
		return fmt.Errorf("errors closing: %v", strings.Join(closeErrMessages, ", "))
	}

	return nil
}
