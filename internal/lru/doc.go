// Package lru provides a small generic least-recently-used cache.
//
// The render engine keeps derived per-shape data (device-space outlines)
// keyed by shape id and revision. The engine is single-goroutine, so the
// cache does no locking: callers that share a Cache must synchronize.
package lru
