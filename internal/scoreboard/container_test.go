package scoreboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-mediator/internal/scoreboard"
	scoreboardhttp "github.com/klwxsrx/go-mediator/internal/scoreboard/infra/http"
	pkghttp "github.com/klwxsrx/go-mediator/pkg/http"
	"github.com/klwxsrx/go-mediator/pkg/log"
	"github.com/klwxsrx/go-mediator/pkg/mediator"
)

func newServer(t *testing.T) pkghttp.Server {
	t.Helper()
	m := mediator.New()
	t.Cleanup(m.Close)

	container, err := scoreboard.NewDependencyContainer(context.Background(), m, log.NewStub())
	require.NoError(t, err)

	srv := pkghttp.NewServer(
		pkghttp.DefaultServerAddress,
		pkghttp.WithErrorStatusMapper(scoreboardhttp.ErrorStatus),
	)
	container.RegisterHTTPHandlers(srv)
	return srv
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestScoreboard_ScoresAndLeaderboard(t *testing.T) {
	srv := newServer(t)

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/players/alice/score", `{"points":3}`).Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/players/bob/score", `{"points":5}`).Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/players/alice/score", `{"points":4}`).Code)

	rec := do(t, srv, http.MethodGet, "/players/alice/score", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"playerID":"alice","score":7}`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/leaderboard?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"playerID":"alice","score":7}]`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/announcer/announcements", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/round/reset", "").Code)
	rec = do(t, srv, http.MethodGet, "/leaderboard", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestScoreboard_InvalidPoints(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/players/alice/score", `{"points":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, srv, http.MethodGet, "/announcer/announcements", "")
	assert.JSONEq(t, `{"count":1}`, rec.Body.String(), "announcer is not affected by the failing board")

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/players/alice/score", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/leaderboard?limit=many", "").Code)
}

func TestScoreboard_RetiredAnnouncerStopsAnswering(t *testing.T) {
	srv := newServer(t)

	assert.Equal(t, http.StatusAccepted, do(t, srv, http.MethodPost, "/announcer/retire", "").Code)
	assert.Equal(t, http.StatusAccepted, do(t, srv, http.MethodPost, "/announcer/retire", "").Code)

	assert.Eventually(t, func() bool {
		return do(t, srv, http.MethodGet, "/announcer/announcements", "").Code == http.StatusServiceUnavailable
	}, time.Second, time.Millisecond)

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/players/alice/score", `{"points":1}`).Code)

	var out struct {
		Score int `json:"score"`
	}
	rec := do(t, srv, http.MethodGet, "/players/alice/score", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Score)
}
