package strings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgstrings "github.com/klwxsrx/go-mediator/pkg/strings"
)

func TestParseTypedValue(t *testing.T) {
	b, err := pkgstrings.ParseTypedValue[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	i, err := pkgstrings.ParseTypedValue[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	d, err := pkgstrings.ParseTypedValue[time.Duration]("1500ms")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	_, err = pkgstrings.ParseTypedValue[int]("forty-two")
	assert.Error(t, err)

	_, err = pkgstrings.ParseTypedValue[[]byte]("x")
	assert.Error(t, err)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "get_count", pkgstrings.ToSnakeCase("GetCount"))
	assert.Equal(t, "player-died", pkgstrings.ToKebabCase("PlayerDied"))
}
