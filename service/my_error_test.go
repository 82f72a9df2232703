package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
	assert.Equal(t, "bad_parameter invalid input: underlying", e.Error())
	assert.ErrorIs(t, e, inner)
}

func TestMyError_ErrorWithoutInner(t *testing.T) {
	e := NewEntityNotFoundError("no instances stored", nil)
	assert.Equal(t, "entity_not_found no instances stored", e.Error())
}

func TestNewInternalServerError(t *testing.T) {
	e := NewInternalServerError("redis failed", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.Equal(t, "redis failed", e.Message)
}

func TestNewBadParameterError(t *testing.T) {
	e := NewBadParameterError("invalid body", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid body", e.Message)
}

func TestNewInternalServerError_KeepsWrappedMyError(t *testing.T) {
	notFound := NewEntityNotFoundError("gone", nil)
	e := NewInternalServerError("load instances", fmt.Errorf("scan: %w", notFound))
	assert.Same(t, notFound, e)
}

func TestToMyError_WithMyError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToMyError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToMyError_WithOrdinaryError(t *testing.T) {
	got := ToMyError(errors.New("plain"))
	assert.Nil(t, got)
	assert.Empty(t, ToMyErrorCode(errors.New("plain")))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsEntityNotFoundError(NewEntityNotFoundError("gone", nil)))
	assert.True(t, IsBadParameterError(NewBadParameterError("bad", nil)))
	assert.True(t, IsInternalServerError(fmt.Errorf("wrapped: %w", NewInternalServerError("boom", nil))))
	assert.False(t, IsEntityNotFoundError(NewBadParameterError("bad", nil)))
	assert.False(t, IsBadParameterError(nil))
}
