package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixcap/internal/errdef"
	"fixcap/internal/result"
)

var defFailed = errdef.Register("TEST_FAILED")

func TestOk(t *testing.T) {
	r := result.Ok(42)
	assert.False(t, r.HasError())
	assert.Equal(t, 42, r.Value())
	assert.Nil(t, r.Err())

	v, err := r.Get()
	assert.Equal(t, 42, v)
	assert.Nil(t, err)
}

func TestErr(t *testing.T) {
	occ := errdef.New(defFailed, "boom")
	r := result.Err[int](occ)
	assert.True(t, r.HasError())
	require.NotNil(t, r.Err())
	assert.True(t, r.Err().Is(defFailed))

	v, err := r.Get()
	assert.Zero(t, v)
	assert.Same(t, occ, err)
}

func TestValueOnErrorPanics(t *testing.T) {
	r := result.Err[string](errdef.New(defFailed, "boom"))
	assert.Panics(t, func() { _ = r.Value() })
}

func TestErrWithNilPanics(t *testing.T) {
	assert.Panics(t, func() { result.Err[int](nil) })
	assert.Panics(t, func() { result.Fail(nil) })
}

func TestVoid(t *testing.T) {
	ok := result.OK()
	assert.False(t, ok.HasError())
	assert.Nil(t, ok.Err())

	fail := result.Fail(errdef.New(defFailed, "boom"))
	assert.True(t, fail.HasError())
	require.NotNil(t, fail.Err())
	assert.True(t, fail.Err().Is(defFailed))
}

func TestZeroValueIsSuccess(t *testing.T) {
	var r result.Result[int]
	assert.False(t, r.HasError())
	assert.Zero(t, r.Value())

	var v result.Void
	assert.False(t, v.HasError())
}
