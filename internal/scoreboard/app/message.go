package app

import (
	"github.com/klwxsrx/go-mediator/pkg/mediator"
)

type PlayerScored struct {
	mediator.Notification
	PlayerID string
	Points   int
}

type RoundReset struct {
	mediator.Notification
}

type GetScore struct {
	mediator.Request[int]
	PlayerID string
}

type GetLeaderboard struct {
	mediator.Request[[]Entry]
	Limit int
}

type GetAnnouncementsCount struct {
	mediator.Request[int]
}

type Entry struct {
	PlayerID string
	Score    int
}
