package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLike_AddAndRemove(t *testing.T) {
	set, count, liked := ToggleLike(StringSlice{}, "user-1")
	assert.Equal(t, StringSlice{"user-1"}, set)
	assert.Equal(t, 1, count)
	assert.True(t, liked)

	set, count, liked = ToggleLike(set, "user-2")
	assert.Equal(t, StringSlice{"user-1", "user-2"}, set)
	assert.Equal(t, 2, count)
	assert.True(t, liked)

	set, count, liked = ToggleLike(set, "user-1")
	assert.Equal(t, StringSlice{"user-2"}, set)
	assert.Equal(t, 1, count)
	assert.False(t, liked)
}

func TestToggleLike_IsItsOwnInverse(t *testing.T) {
	original := StringSlice{"a", "b", "c"}

	for _, actor := range []string{"a", "b", "c", "d"} {
		once, _, _ := ToggleLike(original, actor)
		twice, count, _ := ToggleLike(once, actor)

		assert.ElementsMatch(t, []string(original), []string(twice), "double toggle by %s changed the set", actor)
		assert.Equal(t, len(original), count)
	}
}

func TestToggleLike_DoesNotMutateInput(t *testing.T) {
	original := StringSlice{"a", "b"}

	ToggleLike(original, "c")
	assert.Equal(t, StringSlice{"a", "b"}, original)

	ToggleLike(original, "a")
	assert.Equal(t, StringSlice{"a", "b"}, original)
}

func TestStringSlice_Contains(t *testing.T) {
	set := StringSlice{"x", "y"}
	assert.True(t, set.Contains("x"))
	assert.False(t, set.Contains("z"))
	assert.False(t, StringSlice(nil).Contains("x"))
}

func TestStringSlice_JSONRoundTrip(t *testing.T) {
	data, err := StringSlice(nil).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	var ss StringSlice
	assert.NoError(t, ss.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringSlice{"a", "b"}, ss)
}
