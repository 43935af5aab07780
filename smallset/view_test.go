package smallset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewIsOneShot(t *testing.T) {
	v := newView([]int{1, 2, 3})
	assert.Equal(t, 3, v.Len())

	got, ok := v.Next()
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, 2, v.Len())

	assert.Equal(t, []int{2, 3}, v.Collect())
	assert.Equal(t, 0, v.Len())

	_, ok = v.Next()
	assert.False(t, ok)
	assert.Empty(t, v.Collect())
}

func TestViewAllStopsEarly(t *testing.T) {
	v := newView([]int{1, 2, 3, 4})
	for range v.All() {
		break
	}
	assert.Equal(t, []int{2, 3, 4}, v.Collect())
}

func TestViewReleasesSlots(t *testing.T) {
	a, b := new(int), new(int)
	data := []*int{a, b}
	v := newView(data)

	v.Next()
	assert.Nil(t, data[0])
	assert.Same(t, b, data[1])
}

func TestDrain(t *testing.T) {
	for _, n := range []int{2, 16} {
		s := Of(n, 1, 2, 3, 4, 5)
		mode := s.Mode()

		v := s.Drain()
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, mode, s.Mode())

		got := v.Collect()
		if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, got, sortInts); diff != "" {
			t.Errorf("drained elements (-want +got):\n%s", diff)
		}

		assert.Empty(t, s.Drain().Collect())
		assert.True(t, s.Insert(1))
	}
}

func TestDrainInlineReusesBuffer(t *testing.T) {
	s := Of(4, 1, 2)
	s.Drain()
	s.Insert(3)
	s.Insert(4)
	assert.Equal(t, []int{3, 4}, s.Slice())
	assert.Equal(t, Inline, s.Mode())
}
