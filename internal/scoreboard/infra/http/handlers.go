package http

import (
	"net/http"

	"github.com/klwxsrx/go-mediator/internal/scoreboard/app"
	pkghttp "github.com/klwxsrx/go-mediator/pkg/http"
	"github.com/klwxsrx/go-mediator/pkg/mediator"
)

type scorePlayerHandler struct {
	mediator *mediator.Mediator
}

func NewScorePlayerHandler(m *mediator.Mediator) pkghttp.Handler {
	return scorePlayerHandler{mediator: m}
}

func (h scorePlayerHandler) Method() string {
	return http.MethodPost
}

func (h scorePlayerHandler) Path() string {
	return "/players/{playerID}/score"
}

func (h scorePlayerHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		playerID, err := pkghttp.Parse(r, pkghttp.PathParameter[string]("playerID"), nil)
		data, err := pkghttp.Parse(r, pkghttp.JSONBody[scorePlayerIn](), err)
		if err != nil {
			return err
		}

		err = h.mediator.Publish(r.Context(), app.PlayerScored{
			PlayerID: playerID,
			Points:   data.Points,
		})
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	}
}

type scorePlayerIn struct {
	Points int `json:"points"`
}

type getScoreHandler struct {
	mediator *mediator.Mediator
}

func NewGetScoreHandler(m *mediator.Mediator) pkghttp.Handler {
	return getScoreHandler{mediator: m}
}

func (h getScoreHandler) Method() string {
	return http.MethodGet
}

func (h getScoreHandler) Path() string {
	return "/players/{playerID}/score"
}

func (h getScoreHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		playerID, err := pkghttp.Parse(r, pkghttp.PathParameter[string]("playerID"), nil)
		if err != nil {
			return err
		}

		score, err := mediator.Send[int](r.Context(), h.mediator, app.GetScore{PlayerID: playerID})
		if err != nil {
			return err
		}

		w.SetJSONBody(scoreOut{PlayerID: playerID, Score: score})
		return nil
	}
}

type scoreOut struct {
	PlayerID string `json:"playerID"`
	Score    int    `json:"score"`
}

type getLeaderboardHandler struct {
	mediator *mediator.Mediator
}

func NewGetLeaderboardHandler(m *mediator.Mediator) pkghttp.Handler {
	return getLeaderboardHandler{mediator: m}
}

func (h getLeaderboardHandler) Method() string {
	return http.MethodGet
}

func (h getLeaderboardHandler) Path() string {
	return "/leaderboard"
}

func (h getLeaderboardHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		limit := 0
		if r.URL.Query().Has("limit") {
			var err error
			limit, err = pkghttp.Parse(r, pkghttp.QueryParameter[int]("limit"), nil)
			if err != nil {
				return err
			}
		}

		entries, err := mediator.Send[[]app.Entry](r.Context(), h.mediator, app.GetLeaderboard{Limit: limit})
		if err != nil {
			return err
		}

		result := make([]scoreOut, 0, len(entries))
		for _, entry := range entries {
			result = append(result, scoreOut{PlayerID: entry.PlayerID, Score: entry.Score})
		}
		w.SetJSONBody(result)
		return nil
	}
}

type resetRoundHandler struct {
	mediator *mediator.Mediator
}

func NewResetRoundHandler(m *mediator.Mediator) pkghttp.Handler {
	return resetRoundHandler{mediator: m}
}

func (h resetRoundHandler) Method() string {
	return http.MethodPost
}

func (h resetRoundHandler) Path() string {
	return "/round/reset"
}

func (h resetRoundHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		err := h.mediator.Publish(r.Context(), app.RoundReset{})
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	}
}

type getAnnouncementsHandler struct {
	mediator *mediator.Mediator
}

func NewGetAnnouncementsHandler(m *mediator.Mediator) pkghttp.Handler {
	return getAnnouncementsHandler{mediator: m}
}

func (h getAnnouncementsHandler) Method() string {
	return http.MethodGet
}

func (h getAnnouncementsHandler) Path() string {
	return "/announcer/announcements"
}

func (h getAnnouncementsHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		count, err := mediator.Send[int](r.Context(), h.mediator, app.GetAnnouncementsCount{})
		if err != nil {
			return err
		}

		w.SetJSONBody(announcementsOut{Count: count})
		return nil
	}
}

type announcementsOut struct {
	Count int `json:"count"`
}

type retireAnnouncerHandler struct {
	announcer *app.Announcer
}

func NewRetireAnnouncerHandler(announcer *app.Announcer) pkghttp.Handler {
	return retireAnnouncerHandler{announcer: announcer}
}

func (h retireAnnouncerHandler) Method() string {
	return http.MethodPost
}

func (h retireAnnouncerHandler) Path() string {
	return "/announcer/retire"
}

func (h retireAnnouncerHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, _ *http.Request) error {
		h.announcer.Retire()
		w.SetStatusCode(http.StatusAccepted)
		return nil
	}
}
