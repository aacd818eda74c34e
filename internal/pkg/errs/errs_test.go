//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"appointment-agent/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("boom")
		err := errs.Wrap(cause, "loading appointment")
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "loading appointment")
	})
}

func TestWrapf(t *testing.T) {
	assert.NoError(t, errs.Wrapf(nil, "appointment %d", 1))

	cause := errors.New("boom")
	err := errs.Wrapf(cause, "appointment %s", "abc")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "appointment abc: boom", err.Error())
}

func TestNewf(t *testing.T) {
	assert.Equal(t, "unexpected type int32", errs.Newf("unexpected type %T", int32(1)).Error())
}

type kindError struct{ kind string }

func (e kindError) Error() string { return e.kind }

func TestAs(t *testing.T) {
	err := errs.Mark(errs.Wrap(kindError{kind: "NOT_FOUND"}, "loading"), errs.ErrDatabaseOperationFailed)

	var target kindError
	assert.True(t, errs.As(err, &target))
	assert.Equal(t, "NOT_FOUND", target.kind)
}

func TestMark(t *testing.T) {
	t.Run("nil error becomes the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrUnauthorized, errs.Mark(nil, errs.ErrUnauthorized))
	})

	t.Run("marked errors match both sentinel and cause", func(t *testing.T) {
		cause := errs.New("missing api key")
		err := errs.Mark(cause, errs.ErrUnauthorized)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errs.ErrTokenGenerationFailed))
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("with stack"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "with stack", lines[0])
}
