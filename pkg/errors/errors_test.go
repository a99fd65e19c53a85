package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrRuleInvalid, "bad relocation rule")
	require.NotNil(t, err)
	assert.Equal(t, ErrRuleInvalid, err.Code)
	assert.Equal(t, "bad relocation rule", err.Message)
	assert.Equal(t, "[RULE_INVALID] bad relocation rule", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrGlobInvalid, "invalid glob %q", "com/[foo")
	assert.Equal(t, `[GLOB_INVALID] invalid glob "com/[foo"`, err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("open failed")
	err := Wrap(cause, ErrArchiveOpen, "cannot open archive")
	require.NotNil(t, err)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "open failed")

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, ErrArchiveOpen, "ignored"))
}

func TestIs(t *testing.T) {
	err := New(ErrConfigParse, "parse error")
	assert.True(t, errors.Is(err, New(ErrConfigParse, "other message")))
	assert.False(t, errors.Is(err, New(ErrConfigLoad, "parse error")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrapf(fmt.Errorf("boom"), ErrPatternInvalid, "pattern %q", "a(")
	assert.True(t, IsErrorCode(err, ErrPatternInvalid))
	assert.False(t, IsErrorCode(err, ErrRuleInvalid))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrPatternInvalid))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrArchiveWrite, GetErrorCode(New(ErrArchiveWrite, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrRuleInvalid, "bad rule").
		WithDetail("pattern", "org.foo").
		WithDetail("index", 2)
	assert.Equal(t, "org.foo", err.Details["pattern"])
	assert.Equal(t, 2, err.Details["index"])
}
