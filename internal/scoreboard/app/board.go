package app

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/klwxsrx/go-mediator/pkg/mediator"
)

var ErrInvalidPoints = errors.New("points must be positive")

// Board keeps scores of the current round.
type Board struct {
	mutex  sync.Mutex
	scores map[string]int
}

func NewBoard() *Board {
	return &Board{scores: make(map[string]int)}
}

func (b *Board) MediatorHandlers() []mediator.Descriptor {
	return []mediator.Descriptor{
		mediator.OnMulticast(b.onPlayerScored),
		mediator.OnMulticast(b.onRoundReset),
		mediator.OnSingle(b.score),
		mediator.OnSingle(b.leaderboard),
	}
}

func (b *Board) onPlayerScored(_ context.Context, msg PlayerScored) error {
	if msg.Points <= 0 {
		return ErrInvalidPoints
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.scores[msg.PlayerID] += msg.Points
	return nil
}

func (b *Board) onRoundReset(context.Context, RoundReset) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	clear(b.scores)
	return nil
}

func (b *Board) score(_ context.Context, msg GetScore) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.scores[msg.PlayerID], nil
}

func (b *Board) leaderboard(_ context.Context, msg GetLeaderboard) ([]Entry, error) {
	b.mutex.Lock()
	entries := make([]Entry, 0, len(b.scores))
	for playerID, score := range b.scores {
		entries = append(entries, Entry{PlayerID: playerID, Score: score})
	}
	b.mutex.Unlock()

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})
	if msg.Limit > 0 && len(entries) > msg.Limit {
		entries = entries[:msg.Limit]
	}
	return entries, nil
}
