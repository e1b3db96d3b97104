package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/fenboard/internal/chess"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Item: item}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Item: item, Position: chess.NewPosition()}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Text: "8/8/8/8/8/8/8/8 w - - 0 1", Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Item: item}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 64},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 64},
		{"with buffer size", []PoolOption{WithBufferSize(5)}, 1, 5},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 64},
		{"invalid buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestProcessAllPreservesOrder tests that results come back in input order.
func TestProcessAllPreservesOrder(t *testing.T) {
	errOdd := errors.New("odd")
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
			return ProcessResult{Item: item}
		}
		return ProcessResult{Item: item, Error: errOdd}
	}

	const numItems = 20
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = WorkItem{Source: "test", Line: i + 1, Index: i}
	}

	results := ProcessAll(items, variableDelayFunc, WithWorkers(4), WithBufferSize(3))
	if len(results) != numItems {
		t.Fatalf("received %d results; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Item.Index != i || r.Item.Line != i+1 {
			t.Errorf("results[%d] holds item %d (line %d)", i, r.Item.Index, r.Item.Line)
		}
		if (r.Error != nil) != (i%2 == 1) {
			t.Errorf("results[%d].Error = %v", i, r.Error)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}
