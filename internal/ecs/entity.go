// Package ecs provides generational entity handles and dense component
// storage for the simulation. Iteration order is always ascending entity
// index, which keeps per-tick processing deterministic.
package ecs

// EntityID encodes a 32-bit index in the lower bits and a 32-bit generation
// in the upper bits. The generation increments on destroy to invalidate stale
// handles.
type EntityID uint64

// NewEntityID packs an index and generation into an EntityID.
func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// EntityPool manages entity allocation with generational indices and a free list.
type EntityPool struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
	live        int
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 0, 256),
		alive:       make([]bool, 0, 256),
		freeList:    make([]uint32, 0, 64),
	}
}

// Create allocates a new entity, reusing a freed index when one is available.
func (p *EntityPool) Create() EntityID {
	p.live++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		p.alive[idx] = true
		return NewEntityID(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations)) //#nosec G115 -- entity counts stay far below 2^32
	p.generations = append(p.generations, 0)
	p.alive = append(p.alive, true)
	return NewEntityID(idx, 0)
}

// Alive reports whether id refers to a live entity of the current generation.
func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.alive[idx] && p.generations[idx] == id.Generation()
}

// Destroy releases id. Destroying a stale or already destroyed id is a no-op.
func (p *EntityPool) Destroy(id EntityID) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.generations[idx]++
	p.alive[idx] = false
	p.freeList = append(p.freeList, idx)
	p.live--
	return true
}

// Len returns the number of live entities.
func (p *EntityPool) Len() int {
	return p.live
}
