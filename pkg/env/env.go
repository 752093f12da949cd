package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	pkgstrings "github.com/klwxsrx/go-mediator/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

type availableTypes interface {
	bool | int | float64 | string | time.Duration
}

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T availableTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, blank)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("env %s with type %T has invalid value: %w", key, blank, err)
	}
	return v, nil
}

// ParseOr returns fallback when the variable is not set, invalid values are still reported.
func ParseOr[T availableTypes](key string, fallback T) (T, error) {
	v, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return fallback, nil
	}
	return v, err
}
