// Package worker provides a worker pool for parallel FEN processing.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fenboard/internal/chess"
)

// WorkItem is one FEN record read from an input source.
type WorkItem struct {
	Text   string // The FEN text
	Source string // Input name, e.g. a file name or "stdin"
	Line   int    // 1-based line number in Source
	Index  int    // Position in the overall input, used to restore order
}

// ProcessResult is the outcome of parsing a WorkItem.
type ProcessResult struct {
	Item     WorkItem
	Position chess.Position
	Error    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel FEN processing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default the
// pool has 1 worker and a buffer size of 64.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  64,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker has returned.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ProcessAll runs every item through a new pool and returns the results in
// item order. Items must carry distinct Index values in 0..len(items)-1.
func ProcessAll(items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(items))
	for r := range pool.Results() {
		results[r.Item.Index] = r
	}
	return results
}
