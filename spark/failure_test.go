package spark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailures(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")

	conn := NewConnectionFailure("mistral", cause)
	assert.Equal(t, ConnectionFailure, conn.Kind)
	assert.Contains(t, conn.Hint, `ollama run mistral`)
	assert.ErrorIs(t, conn, cause)

	other := NewOtherFailure(errors.New("invalid character 'x'"))
	assert.Equal(t, OtherFailure, other.Kind)
	assert.Contains(t, other.Message, "invalid character 'x'")
	assert.NotEmpty(t, other.Hint)

	var f *Failure
	assert.True(t, errors.As(error(other), &f))
	assert.Equal(t, OtherFailure, f.Kind)
}

func TestNewOtherFailureWithoutCause(t *testing.T) {
	f := NewOtherFailure(nil)
	assert.NotEmpty(t, f.Message)
	assert.Contains(t, f.Message, "unknown error")
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "connection_failure", ConnectionFailure.String())
	assert.Equal(t, "other_failure", OtherFailure.String())
	assert.Equal(t, "unknown", FailureKind(0).String())
}
