package hub_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/go-mediator/pkg/hub"
	"github.com/klwxsrx/go-mediator/pkg/log"
)

func blockingProcess(name string, stopped *atomic.Int32) hub.Process {
	return hub.NewProcess(name, func(stopChan <-chan struct{}) error {
		<-stopChan
		stopped.Add(1)
		return nil
	})
}

func TestHub_StopsProcessesOnSignal(t *testing.T) {
	stopped := &atomic.Int32{}
	h := hub.Run(context.Background(), log.NewStub(),
		blockingProcess("first", stopped),
		blockingProcess("second", stopped),
	)

	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGTERM

	assert.NoError(t, h.Wait(context.Background(), signals))
	assert.Equal(t, int32(2), stopped.Load())
}

func TestHub_ReturnsErrorOfCompletedProcess(t *testing.T) {
	stopped := &atomic.Int32{}
	h := hub.Run(context.Background(), log.NewStub(),
		blockingProcess("blocking", stopped),
		hub.NewProcess("failing", func(<-chan struct{}) error {
			return errors.New("listener failed")
		}),
	)

	err := h.Wait(context.Background(), make(chan os.Signal))
	assert.ErrorContains(t, err, "process failing unexpectedly completed: listener failed")
	assert.Equal(t, int32(1), stopped.Load())
}
