package ggstate

import (
	"image/color"

	"github.com/gogpu/ggstate/render"
)

// Option configures a Session during creation.
//
// Example:
//
//	// Default software engine
//	s := ggstate.New(800, 600, 0)
//
//	// Custom engine (dependency injection)
//	s := ggstate.New(800, 600, 0, ggstate.WithEngine(myEngine))
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	engine     render.Engine
	background color.Color
}

// WithEngine sets the engine the Session drives. The Session takes
// ownership; the engine must not be used elsewhere.
// A nil engine selects the default software engine.
func WithEngine(e render.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithBackground sets the color the surface is cleared to before each full
// render. It only applies to engines implementing render.BackgroundSetter.
// The default is transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
