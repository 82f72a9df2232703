package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrPanic(t *testing.T) {
	t.Run("empty_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "prefix is required", func() {
			StrPanic("", "prefix is required")
		})
	})
	t.Run("non_empty_returns_value", func(t *testing.T) {
		got := StrPanic("instance", "prefix is required")
		require.Equal(t, "instance", got)
	})
}

func TestPositivePanic(t *testing.T) {
	t.Run("zero_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "limit must be positive", func() {
			PositivePanic(0, "limit must be positive")
		})
	})
	t.Run("negative_duration_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "timeout must be positive", func() {
			PositivePanic(-time.Second, "timeout must be positive")
		})
	})
	t.Run("positive_returns_value", func(t *testing.T) {
		assert.Equal(t, 4, PositivePanic(4, "limit must be positive"))
		assert.Equal(t, 2*time.Second, PositivePanic(2*time.Second, "timeout must be positive"))
	})
}

func TestNilPanic(t *testing.T) {
	t.Run("nil_interface_panics", func(t *testing.T) {
		var v interface{} = nil
		assert.PanicsWithValue(t, "interface is required", func() {
			NilPanic(v, "interface is required")
		})
	})
	t.Run("nil_slice_panics", func(t *testing.T) {
		var s []byte = nil
		assert.PanicsWithValue(t, "slice is required", func() {
			NilPanic(s, "slice is required")
		})
	})
	t.Run("nil_func_panics", func(t *testing.T) {
		var f func() time.Time
		assert.PanicsWithValue(t, "now is required", func() {
			NilPanic(f, "now is required")
		})
	})
	t.Run("nil_pointer_panics", func(t *testing.T) {
		var p *int = nil
		assert.PanicsWithValue(t, "pointer is required", func() {
			NilPanic(p, "pointer is required")
		})
	})
	t.Run("non_nil_returns_value", func(t *testing.T) {
		s := []byte("ok")
		got := NilPanic(s, "slice is required")
		require.Equal(t, []byte("ok"), got)
	})
}
