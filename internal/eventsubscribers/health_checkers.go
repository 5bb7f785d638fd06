package eventsubscribers

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"github.com/etherlabsio/healthcheck/v2"

	"ely.by/mapskins/internal/providers"
	"ely.by/mapskins/internal/skins"
)

type Pingable interface {
	Ping(ctx context.Context) error
}

func DatabaseChecker(connection Pingable) healthcheck.CheckerFunc {
	return func(ctx context.Context) error {
		done := make(chan error, 1)
		go func() {
			done <- connection.Ping(ctx)
		}()

		select {
		case <-ctx.Done():
			return errors.New("check timeout")
		case err := <-done:
			return err
		}
	}
}

// MojangResponseChecker reports the last error of the Mojang provider until
// resetDuration passes without new errors or a successful call happens
func MojangResponseChecker(dispatcher Subscriber, resetDuration time.Duration) healthcheck.CheckerFunc {
	errHolder := &expiringErrHolder{D: resetDuration}
	dispatcher.Subscribe(
		"resolver:provider:after_call",
		func(identity skins.Identity, spec providers.Spec, result image.Image, err error) {
			if spec.Kind != providers.Mojang {
				return
			}

			errHolder.Set(err)
		},
	)

	return func(ctx context.Context) error {
		return errHolder.Get()
	}
}

type expiringErrHolder struct {
	D   time.Duration
	err error
	l   sync.Mutex
	t   *time.Timer
}

func (h *expiringErrHolder) Get() error {
	h.l.Lock()
	defer h.l.Unlock()

	return h.err
}

func (h *expiringErrHolder) Set(err error) {
	h.l.Lock()
	defer h.l.Unlock()
	if h.t != nil {
		h.t.Stop()
		h.t = nil
	}

	h.err = err
	if err != nil {
		h.t = time.AfterFunc(h.D, func() {
			h.Set(nil)
		})
	}
}
