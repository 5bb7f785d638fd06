package eventsubscribers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ely.by/mapskins/internal/dispatcher"
	"ely.by/mapskins/internal/providers"
)

type pingableMock struct {
	mock.Mock
}

func (p *pingableMock) Ping(ctx context.Context) error {
	args := p.Called(ctx)
	return args.Error(0)
}

func TestDatabaseChecker(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		p := &pingableMock{}
		p.On("Ping", mock.Anything).Return(nil)
		checker := DatabaseChecker(p)
		assert.Nil(t, checker(context.Background()))
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("mock error")
		p := &pingableMock{}
		p.On("Ping", mock.Anything).Return(err)
		checker := DatabaseChecker(p)
		assert.Equal(t, err, checker(context.Background()))
	})

	t.Run("context timeout", func(t *testing.T) {
		p := &pingableMock{}
		waitChan := make(chan time.Time, 1)
		p.On("Ping", mock.Anything).WaitUntil(waitChan).Return(nil)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		checker := DatabaseChecker(p)
		assert.Errorf(t, checker(ctx), "check timeout")
		close(waitChan)
	})
}

func TestMojangResponseChecker(t *testing.T) {
	t.Run("empty state", func(t *testing.T) {
		d := dispatcher.New()
		checker := MojangResponseChecker(d, time.Millisecond)
		assert.Nil(t, checker(context.Background()))
	})

	t.Run("error from the mojang provider", func(t *testing.T) {
		d := dispatcher.New()
		checker := MojangResponseChecker(d, time.Hour)
		err := errors.New("some error occurred")
		d.Emit("resolver:provider:after_call", mockIdentity, mockMojangSpec, nil, err)
		assert.Equal(t, err, checker(context.Background()))
	})

	t.Run("errors of other providers are ignored", func(t *testing.T) {
		d := dispatcher.New()
		checker := MojangResponseChecker(d, time.Hour)
		d.Emit("resolver:provider:after_call", mockIdentity, providers.ParseSpec("dir:{UUID}.png"), nil, errors.New("mock error"))
		assert.Nil(t, checker(context.Background()))
	})

	t.Run("successful call resets the error", func(t *testing.T) {
		d := dispatcher.New()
		checker := MojangResponseChecker(d, time.Hour)
		d.Emit("resolver:provider:after_call", mockIdentity, mockMojangSpec, nil, errors.New("mock error"))
		d.Emit("resolver:provider:after_call", mockIdentity, mockMojangSpec, mockSkin, nil)
		assert.Nil(t, checker(context.Background()))
	})

	t.Run("error expires", func(t *testing.T) {
		d := dispatcher.New()
		checker := MojangResponseChecker(d, 20*time.Millisecond)
		d.Emit("resolver:provider:after_call", mockIdentity, mockMojangSpec, nil, errors.New("mock error"))
		assert.Error(t, checker(context.Background()))

		assert.Eventually(t, func() bool {
			return checker(context.Background()) == nil
		}, time.Second, 5*time.Millisecond)
	})
}
