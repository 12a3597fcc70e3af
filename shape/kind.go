package shape

import "fmt"

// Kind selects how a shape's outline is derived.
type Kind uint8

const (
	// KindRect draws the selection rectangle. This is the kind of a new shape.
	KindRect Kind = iota

	// KindCircle draws the ellipse inscribed in the selection rectangle.
	KindCircle

	// KindPath draws the shape's path segments.
	KindPath

	// KindFrame is a rectangular container. Frames paint their fills and
	// may clip their children.
	KindFrame

	// KindGroup is a container without geometry of its own.
	KindGroup
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPath:
		return "path"
	case KindFrame:
		return "frame"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind converts a kind name as produced by String.
func ParseKind(s string) (Kind, error) {
	for k := KindRect; k <= KindGroup; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return KindRect, fmt.Errorf("shape: unknown kind %q", s)
}

// BlendMode controls how a shape's paint composites onto what is below it.
type BlendMode uint8

// Separable blend modes from the W3C compositing model.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendDifference
	BlendExclusion

	blendModeCount
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
}

// Valid reports whether m is a known blend mode.
func (m BlendMode) Valid() bool {
	return m < blendModeCount
}

// String returns the CSS name of the blend mode.
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", m)
	}
	return blendModeNames[m]
}

// ParseBlendMode converts a CSS blend mode name.
func ParseBlendMode(s string) (BlendMode, error) {
	for i, name := range blendModeNames {
		if name == s {
			return BlendMode(i), nil
		}
	}
	return BlendNormal, fmt.Errorf("shape: unknown blend mode %q", s)
}
