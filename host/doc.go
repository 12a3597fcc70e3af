// Package host adapts a ggstate.Session to a flat, call-based host
// boundary.
//
// Hosts that cannot pass Go values (a wasm module, an FFI layer, a replay
// script) address shapes by four uint32 words and colors by packed ARGB.
// [Dispatcher] converts those arguments and forwards each call to its
// Session. Calls that edit the current shape fail with [ErrNoCurrentShape]
// when nothing is selected.
//
// [Script] is a TOML list of calls replayed through a Dispatcher:
//
//	[surface]
//	width = 800
//	height = 600
//
//	[[call]]
//	op = "use_shape"
//	id = "1d3f0c8e-2b4a-4c1e-9a57-0f7e6b1c2d3a"
//
//	[[call]]
//	op = "set_selrect"
//	rect = [10, 10, 200, 120]
//
//	[[call]]
//	op = "add_fill"
//	color = 0xff3366cc
//
//	[[call]]
//	op = "render"
//	cached = true
package host
