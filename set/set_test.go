package set

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndContains(t *testing.T) {
	s := New[int]()
	s.Add(1)
	s.Add(2)

	assert.True(t, s.Contains(1), "1 should be a member after Add")
	assert.True(t, s.Contains(2), "2 should be a member after Add")
	assert.False(t, s.Contains(3), "3 was never added")
	assert.Equal(t, 2, s.Len())
}

func TestAddDuplicateIsIdempotent(t *testing.T) {
	s := New[string]()
	s.Add("foo")
	s.Add("foo")

	assert.Equal(t, 1, s.Len(), "adding an existing value must not grow the count")
	assert.True(t, s.Contains("foo"))
}

func TestNewWithInitialValues(t *testing.T) {
	s := New(1, 2, 3, 2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(3))
}

func TestRemove(t *testing.T) {
	t.Run("chain head", func(t *testing.T) {
		s := New[string]("foo", "bar", "baz")
		s.Remove("foo")

		assert.False(t, s.Contains("foo"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("chain successor under forced collision", func(t *testing.T) {
		// "ab" and "ba" share a character multiset, so they share a bucket.
		s := New[string]("ab", "ba")
		s.Remove("ba")

		assert.False(t, s.Contains("ba"))
		assert.True(t, s.Contains("ab"), "head must survive removal of its successor")
		assert.Equal(t, 1, s.Len())
	})

	t.Run("absent value is a no-op", func(t *testing.T) {
		s := New[int](1, 2)
		s.Remove(99)

		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Contains(1))
		assert.True(t, s.Contains(2))
	})
}

func TestGrowthDoublesCapacity(t *testing.T) {
	s := New[string]()
	assert.Equal(t, DefaultCapacity, s.size)

	for i := 0; i < 100; i++ {
		s.Add(fmt.Sprintf("key%d", i))
	}

	assert.Equal(t, 100, s.Len())
	assert.GreaterOrEqual(t, s.size, 2*DefaultCapacity, "capacity should have doubled at least once")
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key%d", i)
		assert.True(t, s.Contains(key), "value %q should survive growth", key)
	}
}

func TestAnagramsCollideAndChain(t *testing.T) {
	s := New[string]()

	// The char-sum hash cannot tell anagrams apart.
	assert.Equal(t, s.bucketIndex("ab"), s.bucketIndex("ba"))

	s.Add("ab")
	s.Add("ba")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("ab"))
	assert.True(t, s.Contains("ba"))
}

func TestValuesSnapshot(t *testing.T) {
	s := New[int](3, 1, 2)

	values := s.Values()
	assert.Len(t, values, 3)
	assert.ElementsMatch(t, []int{1, 2, 3}, values)

	// The snapshot is detached from the live table.
	s.Remove(1)
	assert.Len(t, values, 3)
	assert.Equal(t, 2, s.Len())
}

func TestHeterogeneousElements(t *testing.T) {
	s := New[any]()
	s.Add(1)
	s.Add("1")
	s.Add('x')

	// int 1 and string "1" share the text form "1" and so the bucket,
	// but DeepEqual keeps them distinct members.
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains("1"))
	assert.True(t, s.Contains('x'))
	assert.False(t, s.Contains(2))
}
