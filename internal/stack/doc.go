// File: internal/stack/doc.go
// Brief: Stack registry + selection/ordering engine.

// Package stack implements the stackctl core: filesystem discovery of
// compose stacks, sidecar metadata persistence, selection resolution,
// dependency expansion, deterministic ordering, and run history.
package stack
