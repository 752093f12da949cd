package scoreboard

import (
	"context"
	"fmt"

	"github.com/klwxsrx/go-mediator/internal/scoreboard/app"
	"github.com/klwxsrx/go-mediator/internal/scoreboard/infra/http"
	pkghttp "github.com/klwxsrx/go-mediator/pkg/http"
	"github.com/klwxsrx/go-mediator/pkg/log"
	"github.com/klwxsrx/go-mediator/pkg/mediator"
)

type DependencyContainer struct {
	mediator  *mediator.Mediator
	board     *app.Board
	announcer *app.Announcer
}

func NewDependencyContainer(ctx context.Context, m *mediator.Mediator, logger log.Logger) (*DependencyContainer, error) {
	c := &DependencyContainer{
		mediator:  m,
		board:     app.NewBoard(),
		announcer: app.NewAnnouncer(logger),
	}

	err := m.Scan(ctx, c.board, c.announcer)
	if err != nil {
		return nil, fmt.Errorf("failed to register scoreboard objects: %w", err)
	}
	return c, nil
}

func MustInitDependencyContainer(ctx context.Context, m *mediator.Mediator, logger log.Logger) *DependencyContainer {
	c, err := NewDependencyContainer(ctx, m, logger)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *DependencyContainer) RegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(http.NewScorePlayerHandler(c.mediator))
	registry.Register(http.NewGetScoreHandler(c.mediator))
	registry.Register(http.NewGetLeaderboardHandler(c.mediator))
	registry.Register(http.NewResetRoundHandler(c.mediator))
	registry.Register(http.NewGetAnnouncementsHandler(c.mediator))
	registry.Register(http.NewRetireAnnouncerHandler(c.announcer))
}
