// Package engine is the thin shim between the console pipeline and the
// host rendering engine: entity identifiers, the draw-command buffer the
// host drains each frame, and the depth layers consoles stack at.
package engine

// Entity is a unique identifier for a spawned drawable.
type Entity uint64

// MaterialHandle identifies a material (the font atlas texture) in the
// host engine's material storage. Opaque to this module.
type MaterialHandle uint64
