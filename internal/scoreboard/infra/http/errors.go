package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/go-mediator/internal/scoreboard/app"
	"github.com/klwxsrx/go-mediator/pkg/mediator"
)

func ErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, app.ErrInvalidPoints):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, mediator.ErrNoHandlerRegistered):
		return http.StatusServiceUnavailable, true
	default:
		return 0, false
	}
}
