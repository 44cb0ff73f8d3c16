package pure_test

import (
	"fmt"
	"testing"

	"github.com/groundwork-fn/groundwork/pure"

	"github.com/stretchr/testify/assert"
)

func TestMemoize1(t *testing.T) {
	count := 0
	fn := pure.Memoize1(func(i int) int {
		count++
		return i * 2
	}, 4)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestMemoize2(t *testing.T) {
	count := 0
	fn := pure.Memoize2(func(a, b int) int {
		count++
		return a + b
	}, 4)

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)

	assert.Equal(t, 5, fn(3, 2), "argument order is part of the key")
	assert.Equal(t, 2, count)
}

func TestMemoize3(t *testing.T) {
	count := 0
	fn := pure.Memoize3(func(a, b, c int) int {
		count++
		return a * b * c
	}, 4)

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

type setKey struct {
	Members []int // slices are not comparable
}

func (k setKey) String() string {
	return fmt.Sprintf("setKey%v", k.Members)
}

func TestMemoizeStringerFallback(t *testing.T) {
	count := 0
	fn := pure.Memoize1(func(k setKey) int {
		count++
		return len(k.Members)
	}, 4)

	assert.Equal(t, 3, fn(setKey{Members: []int{1, 2, 3}}))
	assert.Equal(t, 3, fn(setKey{Members: []int{1, 2, 3}}))
	assert.Equal(t, 1, count)
}

func TestMemoizeGenerationRotationKeepsRecentEntries(t *testing.T) {
	count := 0
	fn := pure.Memoize1(func(i int) int {
		count++
		return i
	}, 2)

	fn(1)
	fn(2) // head full
	fn(3) // rotates: {1,2} become fallback
	assert.Equal(t, 3, count)

	fn(2) // still served from the fallback generation
	assert.Equal(t, 3, count)
}

func TestMemoizeZeroMaxSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		pure.Memoize1(func(i int) int { return i }, 0)
	})
}
