package image

import (
	"sync"
	"sync/atomic"
)

// PlanePool recycles plane storage by length, so converting a stream of
// same-sized buffers does not allocate for every frame.
type PlanePool struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

var planePool = NewPlanePool()

func NewPlanePool() *PlanePool {
	return &PlanePool{pools: make(map[int]*sync.Pool)}
}

// Get retrieves a zeroed plane of the given length from the pool or makes a
// new one.
func (p *PlanePool) Get(size int) []float32 {
	if size == 0 {
		return []float32{}
	}

	// Fast path: read lock
	p.mu.RLock()
	pool, exists := p.pools[size]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double-check after acquiring write lock
		pool, exists = p.pools[size]
		if !exists {
			pool = &sync.Pool{}
			p.pools[size] = pool
		}
		p.mu.Unlock()
	}

	if plane, ok := pool.Get().([]float32); ok {
		p.hits.Add(1)
		return plane
	}
	p.misses.Add(1)
	return make([]float32, size)
}

// Put clears plane and returns it to the pool.
func (p *PlanePool) Put(plane []float32) {
	if len(plane) == 0 {
		return
	}

	p.mu.RLock()
	pool, exists := p.pools[len(plane)]
	p.mu.RUnlock()

	if exists {
		clear(plane)
		pool.Put(plane)
	}
}

// Metrics returns pool usage statistics.
func (p *PlanePool) Metrics() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}

// PoolMetrics returns usage statistics of the pool shared by all buffers.
func PoolMetrics() (hits, misses int64) {
	return planePool.Metrics()
}
