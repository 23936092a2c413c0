package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceIDs(t *testing.T) {
	gen := NewSequenceIDs("preset")

	assert.Equal(t, "preset-1", gen.Generate())
	assert.Equal(t, "preset-2", gen.Generate())

	gen.Reset()
	assert.Equal(t, "preset-1", gen.Generate())
}

func TestSequenceIDs_DefaultPrefix(t *testing.T) {
	assert.Equal(t, "id-1", NewSequenceIDs("").Generate())
}

func TestSequenceIDs_ConcurrentUnique(t *testing.T) {
	gen := NewSequenceIDs("c")
	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := gen.Generate()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 400)
}

func TestScriptedSource_Cycles(t *testing.T) {
	src := NewScriptedSource(0, 1, 3)

	assert.Equal(t, 0, src.IntN(2))
	assert.Equal(t, 1, src.IntN(2))
	assert.Equal(t, 1, src.IntN(2), "3 mod 2")
	assert.Equal(t, 0, src.IntN(2), "wraps to start")
}

func TestManualTicker(t *testing.T) {
	tk := NewManualTicker(2)
	tk.Tick()
	tk.Tick()

	assert.Len(t, tk.C(), 2)
	assert.False(t, tk.Stopped())
	tk.Stop()
	assert.True(t, tk.Stopped())
}
