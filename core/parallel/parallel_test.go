package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversEveryItem(t *testing.T) {
	for _, items := range []int{0, 1, 7, 100, 1023} {
		visits := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("items=%d: index %d visited %d times", items, i, v)
			}
		}
	}
}

func TestParallelizeWithThresholdSequentialBelow(t *testing.T) {
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Fatalf("sequential range = [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Fatalf("expected a single sequential call, got %d", calls)
	}
}

func TestParallelizeWithThresholdParallelAbove(t *testing.T) {
	const items = 500
	var visited int32
	ParallelizeWithThreshold(items, 10, func(start, end int) {
		atomic.AddInt32(&visited, int32(end-start))
	})
	if visited != items {
		t.Fatalf("visited %d items, want %d", visited, items)
	}
}
