package ecs

// Entities owns the entity pool, the component registry and a deferred
// destruction queue. Removal requests made while iterating are applied by
// Flush, so an iteration never observes a half-destroyed entity.
type Entities struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
	queued       map[EntityID]bool
}

func NewEntities() *Entities {
	return &Entities{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 16),
		queued:       make(map[EntityID]bool),
	}
}

// Track registers a component store for cleanup on destroy.
func (e *Entities) Track(store Removable) {
	e.registry.Register(store)
}

func (e *Entities) Create() EntityID {
	return e.pool.Create()
}

func (e *Entities) Alive(id EntityID) bool {
	return e.pool.Alive(id)
}

func (e *Entities) Len() int {
	return e.pool.Len()
}

// MarkForDestruction queues a live entity for removal on the next Flush.
// Queuing the same entity twice is a no-op. Returns false if id was not
// queued by this call.
func (e *Entities) MarkForDestruction(id EntityID) bool {
	if !e.pool.Alive(id) || e.queued[id] {
		return false
	}
	e.queued[id] = true
	e.destroyQueue = append(e.destroyQueue, id)
	return true
}

// Pending reports whether id is queued for destruction.
func (e *Entities) Pending(id EntityID) bool {
	return e.queued[id]
}

// Flush destroys all queued entities and clears their components.
// Returns the number of entities destroyed.
func (e *Entities) Flush() int {
	n := 0
	for _, id := range e.destroyQueue {
		e.registry.RemoveAll(id)
		if e.pool.Destroy(id) {
			n++
		}
		delete(e.queued, id)
	}
	e.destroyQueue = e.destroyQueue[:0]
	return n
}

// Destroy removes id immediately, outside of any iteration.
func (e *Entities) Destroy(id EntityID) {
	e.registry.RemoveAll(id)
	e.pool.Destroy(id)
	delete(e.queued, id)
}
