package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/klwxsrx/go-mediator/pkg/log"
	"github.com/klwxsrx/go-mediator/pkg/mediator"
)

// Announcer logs every score. It stays subscribed until Retire is called.
type Announcer struct {
	logger     log.Logger
	announced  *atomic.Int64
	done       chan struct{}
	onceRetire *sync.Once
}

func NewAnnouncer(logger log.Logger) *Announcer {
	return &Announcer{
		logger:     logger,
		announced:  &atomic.Int64{},
		done:       make(chan struct{}),
		onceRetire: &sync.Once{},
	}
}

func (a *Announcer) MediatorHandlers() []mediator.Descriptor {
	return []mediator.Descriptor{
		mediator.OnMulticast(a.onPlayerScored),
		mediator.OnSingle(a.announcementsCount),
	}
}

func (a *Announcer) Done() <-chan struct{} {
	return a.done
}

func (a *Announcer) Retire() {
	a.onceRetire.Do(func() {
		close(a.done)
	})
}

func (a *Announcer) onPlayerScored(ctx context.Context, msg PlayerScored) error {
	a.announced.Add(1)
	a.logger.With(log.Fields{
		"playerID": msg.PlayerID,
		"points":   msg.Points,
	}).Info(ctx, "player scored")
	return nil
}

func (a *Announcer) announcementsCount(context.Context, GetAnnouncementsCount) (int, error) {
	return int(a.announced.Load()), nil
}
