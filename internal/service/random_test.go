package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomizer_InRange(t *testing.T) {
	rnd := NewRandomizer()

	for i := 0; i < 1000; i++ {
		v := rnd.IntN(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

func TestNewSeededRandomizer_SameSeedSameSequence(t *testing.T) {
	a := NewSeededRandomizer(42)
	b := NewSeededRandomizer(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSeededRandomizer_CoversAllValues(t *testing.T) {
	rnd := NewSeededRandomizer(7)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		seen[rnd.IntN(3)] = true
	}

	assert.Len(t, seen, 3)
}

func TestNewSeededRandomizer_ConcurrentUse(t *testing.T) {
	rnd := NewSeededRandomizer(3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = rnd.IntN(10)
			}
		}()
	}
	wg.Wait()
}
