package alloc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocked_ConcurrentAllocateNeverOversubscribes races more allocations
// than there are blocks and checks exactly the available blocks were handed out.
func TestLocked_ConcurrentAllocateNeverOversubscribes(t *testing.T) {
	la := NewLocked(newClassic(t))

	const workers = 16
	const perWorker = 10

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := make(map[int]int)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				res, err := la.Allocate(1)
				if err != nil || !res.OK {
					continue
				}
				mu.Lock()
				granted[res.Category]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, map[int]int{50: 5, 100: 5, 200: 5, 300: 5, 500: 5}, granted)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, freeCounts(la))

	stats := la.Stats()
	assert.Equal(t, 25, stats.Allocations)
	assert.Equal(t, workers*perWorker-25, stats.Failures)
}

func TestLocked_ConcurrentDeallocateLosesNothing(t *testing.T) {
	la := NewLocked(newClassic(t))

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				_, _ = la.Deallocate(300)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5+workers*perWorker, la.Status()[3].FreeCount)
}

func TestLocked_Reset(t *testing.T) {
	la := NewLocked(newClassic(t))
	mustAllocate(t, la, 500, 500)
	_, err := la.Deallocate(50)
	require.NoError(t, err)

	la.Reset()
	assert.Equal(t, []int{5, 5, 5, 5, 5}, freeCounts(la))
}
