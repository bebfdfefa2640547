// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrConfNotFound,
			message: "conf not found",
			wantStr: "[CONF_NOT_FOUND] conf not found",
		},
		{
			name:    "parse_error",
			code:    errors.ErrConfigParse,
			message: "invalid count mode",
			wantStr: "[CONFIG_PARSE] invalid count mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigParse, "line %d: %s", 3, "count=twice")
	assert.Equal(t, "line 3: count=twice", err.Message)
	assert.Equal(t, "[CONFIG_PARSE] line 3: count=twice", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
	})

	t.Run("wrapped error is reachable", func(t *testing.T) {
		base := stderrors.New("unexpected ')'")
		err := errors.Wrapf(base, errors.ErrConfigParse, "invalid regexp at line %d", 2)

		assert.Equal(t, "[CONFIG_PARSE] invalid regexp at line 2: unexpected ')'", err.Error())
		assert.True(t, stderrors.Is(err, base))
		assert.Equal(t, base, stderrors.Unwrap(err))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "bad line").
		WithDetail("line", 4).
		WithDetail("text", "count=twice")

	assert.Equal(t, 4, err.Details["line"])
	assert.Equal(t, "count=twice", err.Details["text"])

	empty := &errors.CgrcError{Code: errors.ErrInternal}
	empty.WithDetail("k", "v")
	assert.Equal(t, "v", empty.Details["k"])
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrConfNotFound, "nginx")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConfNotFound, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConfigParse, "nginx")))
	assert.False(t, stderrors.Is(err, stderrors.New("plain")))
}

func TestIsErrorCode(t *testing.T) {
	base := errors.New(errors.ErrConfigParse, "bad count")
	wrapped := fmt.Errorf("loading: %w", base)

	assert.True(t, errors.IsErrorCode(base, errors.ErrConfigParse))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrConfigParse))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrInputRead, errors.GetErrorCode(errors.New(errors.ErrInputRead, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "x").WithDetail("line", 1)
	details := errors.GetErrorDetails(fmt.Errorf("outer: %w", err))
	require.NotNil(t, details)
	assert.Equal(t, 1, details["line"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	root := stderrors.New("permission denied")
	mid := errors.Wrap(root, errors.ErrFileAccess, "cannot read /etc/cgrc/nginx")
	top := errors.Wrap(mid, errors.ErrConfNotFound, "nginx")

	assert.Equal(t, errors.ErrConfNotFound, errors.GetErrorCode(top))
	assert.True(t, errors.IsErrorCode(top, errors.ErrConfNotFound))
	assert.True(t, stderrors.Is(top, root))

	var inner *errors.CgrcError
	require.True(t, stderrors.As(stderrors.Unwrap(top), &inner))
	assert.Equal(t, errors.ErrFileAccess, inner.Code)
}
