package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	pkgstrings "github.com/klwxsrx/go-mediator/pkg/strings"
)

var ErrParsingError = errors.New("failed to parse request")

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	HTTPHandler() HandlerFunc
}

// ErrorStatusMapper picks a response status for an error returned by a handler,
// false means the next mapper or the default one decides.
type ErrorStatusMapper func(err error) (int, bool)

type ResponseWriter interface {
	SetStatusCode(httpCode int) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type RequestDataProvider[T any] func(*http.Request) (T, error)

func Parse[T any](r *http.Request, provider RequestDataProvider[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	result, err := provider(r)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrParsingError, err)
	}
	return result, nil
}

func PathParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		paramValue, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("path parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](paramValue)
	}
}

func QueryParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("query parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](value)
	}
}

func JSONBody[T any]() RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return body, fmt.Errorf("failed to decode json body: %w", err)
		}
		return body, nil
	}
}

type responseWriter struct {
	impl     http.ResponseWriter
	httpCode int
	body     any
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	return w
}

func (w *responseWriter) write(err error, mappers []ErrorStatusMapper) int {
	if err != nil {
		code := errorStatusCode(err, mappers)
		writeJSON(w.impl, code, errorOut{Error: err.Error()})
		return code
	}

	if w.body == nil {
		w.impl.WriteHeader(w.httpCode)
		return w.httpCode
	}

	writeJSON(w.impl, w.httpCode, w.body)
	return w.httpCode
}

func errorStatusCode(err error, mappers []ErrorStatusMapper) int {
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}
	for _, mapper := range mappers {
		if code, ok := mapper(err); ok {
			return code
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

type errorOut struct {
	Error string `json:"error"`
}
