package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	s := OK()
	assert.True(t, s.IsOK())
	assert.Equal(t, "ok", s.String())
	assert.NoError(t, s.Err())
}

func TestError(t *testing.T) {
	s := Error("boom")
	assert.False(t, s.IsOK())
	assert.Equal(t, KindError, s.Kind)
	assert.Equal(t, "error: boom", s.String())
	require.Error(t, s.Err())
	assert.Equal(t, "boom", s.Err().Error())
}

func TestFromErr(t *testing.T) {
	assert.Equal(t, OK(), FromErr(nil))
	assert.Equal(t, Error("bad input"), FromErr(errors.New("bad input")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ok", KindOK.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
