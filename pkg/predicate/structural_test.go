package predicate_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

func TestIntersects(t *testing.T) {
	t.Parallel()

	t.Run("passes when candidate is a subset", func(t *testing.T) {
		assert.NoError(t, predicate.Intersects([]string{"x"}, []string{"x", "y"}))
	})

	t.Run("passes for empty candidate", func(t *testing.T) {
		assert.NoError(t, predicate.Intersects(nil, []string{"x"}))
		assert.NoError(t, predicate.Intersects([]string{}, nil))
	})

	t.Run("fails when an element is not allowed", func(t *testing.T) {
		err := predicate.Intersects([]string{"x", "y"}, []string{"x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, predicate.ErrPredicateFailed)
		assert.ErrorIs(t, err, predicate.ErrNotSubset)
		assert.Contains(t, err.Error(), "y")
	})

	t.Run("works with any comparable type", func(t *testing.T) {
		assert.NoError(t, predicate.Intersects([]int{1, 2}, []int{1, 2, 3}))
		assert.Error(t, predicate.Intersects([]int{4}, []int{1, 2, 3}))
	})
}

func TestIsDate(t *testing.T) {
	t.Parallel()

	valid := []any{
		"2011-10-05T14:48:00.000Z",
		"2011-10-05T14:48:00Z",
		"2011-10-05T14:48:00+02:00",
		"2011-10-05",
		"2011-10-05 14:48:00",
		float64(1317826080000),
		json.Number("1317826080000"),
		time.Date(2011, 10, 5, 0, 0, 0, 0, time.UTC),
	}
	for _, v := range valid {
		assert.NoError(t, predicate.IsDate(v), "value %v", v)
	}

	invalid := []any{nil, "", "   ", "invalidValue", "2011-13-45", float64(0), true, map[string]any{}, time.Time{}}
	for _, v := range invalid {
		err := predicate.IsDate(v)
		assert.ErrorIs(t, err, predicate.ErrInvalidDate, "value %v", v)
	}
}

func TestIsPlainObject(t *testing.T) {
	t.Parallel()

	t.Run("accepts string keyed maps", func(t *testing.T) {
		assert.NoError(t, predicate.IsPlainObject(map[string]any{"a": 1}, true))
		assert.NoError(t, predicate.IsPlainObject(map[string]string{}, true))
	})

	t.Run("rejects non objects", func(t *testing.T) {
		for _, v := range []any{123, "str", []any{"a"}, map[int]string{1: "a"}, struct{}{}} {
			assert.ErrorIs(t, predicate.IsPlainObject(v, false), predicate.ErrNotObject, "value %v", v)
		}
	})

	t.Run("null depends on required flag", func(t *testing.T) {
		assert.NoError(t, predicate.IsPlainObject(nil, false))
		assert.ErrorIs(t, predicate.IsPlainObject(nil, true), predicate.ErrNotObject)
	})
}

func TestIsObjectLike(t *testing.T) {
	t.Parallel()

	type item struct{ Name string }

	t.Run("accepts structured values", func(t *testing.T) {
		for _, v := range []any{map[string]any{}, []any{"value"}, [2]int{1, 2}, item{}, &item{}} {
			assert.NoError(t, predicate.IsObjectLike(v, true), "value %v", v)
		}
	})

	t.Run("rejects scalars and nil pointers", func(t *testing.T) {
		var nilItem *item
		for _, v := range []any{123, "str", true, nilItem} {
			assert.ErrorIs(t, predicate.IsObjectLike(v, false), predicate.ErrNotObjectLike, "value %v", v)
		}
	})

	t.Run("null depends on required flag", func(t *testing.T) {
		assert.NoError(t, predicate.IsObjectLike(nil, false))
		assert.Error(t, predicate.IsObjectLike(nil, true))
	})
}

func TestIsUUIDv4(t *testing.T) {
	t.Parallel()

	assert.NoError(t, predicate.IsUUIDv4("c51c80c2-66a1-442a-91e2-4f55b4256a72"))
	assert.NoError(t, predicate.IsUUIDv4("C51C80C2-66A1-442A-91E2-4F55B4256A72"))

	invalid := []any{
		nil,
		"",
		"invalidValue",
		"c51c80c2-66a1-142a-91e2-4f55b4256a72", // version 1
		"c51c80c2-66a1-442a-c1e2-4f55b4256a72", // wrong variant
		"urn:uuid:c51c80c2-66a1-442a-91e2-4f55b4256a72",
		"{c51c80c2-66a1-442a-91e2-4f55b4256a72}",
		123,
	}
	for _, v := range invalid {
		assert.ErrorIs(t, predicate.IsUUIDv4(v), predicate.ErrInvalidUUID, "value %v", v)
	}
}
