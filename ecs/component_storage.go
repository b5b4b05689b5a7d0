package ecs

import (
	"iter"
	"reflect"
)

// componentStorage is a type-erased column of components inside an archetype.
type componentStorage interface {
	Append(item any) int
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, so independent worlds
// (one per test, for example) never share columns.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers a component type with the registry.
// This must be called for each component type before it is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

// Registered reports whether a component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}

const blockSize = 64

// blockStorage stores components of type T in fixed-size blocks, so pointers
// handed out by Get stay valid while the column grows.
type blockStorage[T any] struct {
	blocks []*[blockSize]T
	count  int
}

// Append adds a component to storage and returns its index.
func (cs *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	index := cs.count
	blockIdx, slotIdx := index/blockSize, index%blockSize
	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([blockSize]T))
	}

	cs.blocks[blockIdx][slotIdx] = value
	cs.count++
	return index
}

// Get returns a pointer to the component at the given index, or nil.
func (cs *blockStorage[T]) Get(index int) any {
	if !cs.Has(index) {
		return nil
	}
	return &cs.blocks[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Has(index int) bool {
	return index >= 0 && index < cs.count
}

func (cs *blockStorage[T]) Len() int {
	return cs.count
}

func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.count; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
