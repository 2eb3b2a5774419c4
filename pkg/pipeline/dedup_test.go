package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupSetAddContains(t *testing.T) {
	d := newDedupSet(10)

	assert.False(t, d.Contains("a"))
	d.Add("a")
	assert.True(t, d.Contains("a"))

	// Re-adding is a no-op.
	d.Add("a")
	assert.Equal(t, 1, d.Len())
}

func TestDedupSetEvictsOlderHalf(t *testing.T) {
	d := newDedupSet(4)
	for _, id := range []string{"a", "b", "c", "d"} {
		d.Add(id)
	}
	assert.Equal(t, 4, d.Len())

	// The fifth insert exceeds capacity; the two oldest ids go.
	d.Add("e")
	assert.Equal(t, 3, d.Len())
	assert.False(t, d.Contains("a"))
	assert.False(t, d.Contains("b"))
	assert.True(t, d.Contains("c"))
	assert.True(t, d.Contains("d"))
	assert.True(t, d.Contains("e"))
}

func TestDedupSetEvictionIsDeterministic(t *testing.T) {
	run := func() []string {
		d := newDedupSet(6)
		for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
			d.Add(id)
		}
		survivors := make([]string, 0, d.Len())
		for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
			if d.Contains(id) {
				survivors = append(survivors, id)
			}
		}
		return survivors
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Equal(t, []string{"4", "5", "6", "7"}, first)
}

func TestDedupSetDefaultCapacity(t *testing.T) {
	d := newDedupSet(0)
	assert.Equal(t, dedupCapacity, d.capacity)
}
