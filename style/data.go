package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "sync"

// ElementData is the per-element style slot the cascade engine fills
// during a restyle: the computed property values plus bookkeeping about
// the restyle itself.
type ElementData struct {
	// Styles holds the computed property values of the element.
	Styles *PropertyMap
	// RestyleGeneration counts completed restyles of this element.
	RestyleGeneration uint32
}

// NewElementData returns an empty, default-initialized slot value.
func NewElementData() *ElementData {
	return &ElementData{Styles: NewPropertyMap()}
}

// Cell is a guarded, lazily created slot for an element's style data.
//
// The cascade engine may visit disjoint elements from parallel workers,
// so access follows a single-writer/many-readers discipline scoped per
// node. All accessors are closure-scoped: the guard is released when the
// closure returns and is never held across a suspension point (all
// operations are synchronous).
type Cell struct {
	mu   sync.RWMutex
	data *ElementData
}

// Ensure default-initializes the slot if it is empty, then calls f with
// exclusive access. Ensure is idempotent: data already present is
// handed to f unchanged.
func (c *Cell) Ensure(f func(*ElementData)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = NewElementData()
	}
	f(c.data)
}

// Borrow calls f with shared access, or returns false if the slot has
// not been ensured yet.
func (c *Cell) Borrow(f func(*ElementData)) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.data == nil {
		return false
	}
	f(c.data)
	return true
}

// Mutate calls f with exclusive access, or returns false if the slot has
// not been ensured yet.
func (c *Cell) Mutate(f func(*ElementData)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return false
	}
	f(c.data)
	return true
}

// Clear empties the slot.
func (c *Cell) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
}

// Has reports whether the slot holds data.
func (c *Cell) Has() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data != nil
}
