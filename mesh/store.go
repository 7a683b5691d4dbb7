package mesh

import (
	"errors"
	"sync"
)

// Handle identifies a mesh registered with a Store. Stable for the mesh's
// lifetime; 0 is never a valid handle.
type Handle uint64

// ErrUnknownHandle is returned when replacing or fetching a handle the
// store never issued.
var ErrUnknownHandle = errors.New("mesh: unknown handle")

// Store is the asset-storage contract the console backends publish
// geometry through. Add registers a buffer and returns its handle;
// Replace swaps the data behind an existing handle in place.
type Store interface {
	Add(m *Mesh) Handle
	Replace(h Handle, m *Mesh) error
	Get(h Handle) (*Mesh, bool)
	Len() int
}

// Assets is an in-memory Store. It stands in for the host engine's mesh
// asset storage in tests and in the preview demo.
type Assets struct {
	mu     sync.RWMutex
	meshes map[Handle]*Mesh
	next   Handle
}

// NewAssets creates an empty store.
func NewAssets() *Assets {
	return &Assets{
		meshes: make(map[Handle]*Mesh, 8),
	}
}

// Add registers a mesh and returns its handle.
func (a *Assets) Add(m *Mesh) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	a.meshes[a.next] = m
	return a.next
}

// Replace swaps the mesh behind an existing handle.
func (a *Assets) Replace(h Handle, m *Mesh) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.meshes[h]; !ok {
		return ErrUnknownHandle
	}
	a.meshes[h] = m
	return nil
}

// Get retrieves the mesh behind a handle.
func (a *Assets) Get(h Handle) (*Mesh, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.meshes[h]
	return m, ok
}

// Len returns the number of registered meshes.
func (a *Assets) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.meshes)
}
