package hub

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/klwxsrx/go-mediator/pkg/log"
)

type Process interface {
	Name() string
	Func() func(stopChan <-chan struct{}) error
}

type process struct {
	name string
	fn   func(stopChan <-chan struct{}) error
}

func NewProcess(name string, fn func(stopChan <-chan struct{}) error) Process {
	return process{name: name, fn: fn}
}

func (p process) Name() string {
	return p.name
}

func (p process) Func() func(stopChan <-chan struct{}) error {
	return p.fn
}

func Must(err error) {
	if err != nil {
		panic(fmt.Errorf("hub completed with error: %w", err))
	}
}

// Hub stops every process when a termination signal arrives or any process completes.
type Hub interface {
	Wait(ctx context.Context, termSignalsChan <-chan os.Signal) error
}

type hub struct {
	logger            log.Logger
	wg                *sync.WaitGroup
	processCount      int
	onceDoer          *sync.Once
	stopChan          chan struct{}
	processResultChan chan processResult
	result            error
}

func (h *hub) Wait(ctx context.Context, termSignalsChan <-chan os.Signal) error {
	h.onceDoer.Do(func() {
		select {
		case <-termSignalsChan:
			h.logger.Info(ctx, "termination signal received")
		case <-ctx.Done():
		case res := <-h.processResultChan:
			h.result = fmt.Errorf("process %s unexpectedly completed", res.processName)
			if res.err != nil {
				h.result = fmt.Errorf("process %s unexpectedly completed: %w", res.processName, res.err)
			}
			h.processCount--
		}

		for i := 0; i < h.processCount; i++ {
			h.stopChan <- struct{}{}
		}

		h.wg.Wait()

		for {
			select {
			case res := <-h.processResultChan:
				if res.err != nil {
					h.logger.WithField("processName", res.processName).
						WithError(res.err).
						Error(ctx, "process completed after stop with error")
				}
			default:
				return
			}
		}
	})

	h.wg.Wait()
	return h.result
}

func Run(ctx context.Context, logger log.Logger, ps ...Process) Hub {
	wg := &sync.WaitGroup{}
	stopChan := make(chan struct{}, len(ps))
	processResultChan := make(chan processResult, len(ps))

	for _, p := range ps {
		wg.Add(1)
		go func(p Process) {
			defer wg.Done()
			logger.WithField("processName", p.Name()).Info(ctx, "process started")
			err := p.Func()(stopChan)
			processResultChan <- processResult{p.Name(), err}
		}(p)
	}

	return &hub{
		logger:            logger,
		wg:                wg,
		processCount:      len(ps),
		processResultChan: processResultChan,
		onceDoer:          &sync.Once{},
		stopChan:          stopChan,
	}
}

type processResult struct {
	processName string
	err         error
}
