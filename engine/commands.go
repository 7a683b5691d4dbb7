package engine

import "github.com/lixenwraith/glyphmesh/mesh"

// DrawCommand describes one drawable to create: a registered mesh rendered
// with a material at a depth layer.
type DrawCommand struct {
	Entity   Entity
	Mesh     mesh.Handle
	Material MaterialHandle
	Z        int
}

// Commands queues entity-creation commands for the host engine.
// Fire-and-forget from the console's side; the host drains the queue at
// the end of the frame.
type Commands struct {
	next   Entity
	queued []DrawCommand
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{
		queued: make([]DrawCommand, 0, 8),
	}
}

// SpawnMesh queues a drawable entity for the given mesh, material and
// depth layer, and returns its entity id.
func (c *Commands) SpawnMesh(m mesh.Handle, mat MaterialHandle, z int) Entity {
	c.next++
	c.queued = append(c.queued, DrawCommand{
		Entity:   c.next,
		Mesh:     m,
		Material: mat,
		Z:        z,
	})
	return c.next
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queued)
}

// Drain returns the queued commands and resets the queue. Entity ids keep
// counting across drains.
func (c *Commands) Drain() []DrawCommand {
	out := c.queued
	c.queued = make([]DrawCommand, 0, 8)
	return out
}
