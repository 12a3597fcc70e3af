package host

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/gogpu/ggstate/shape"
)

// Surface is the [surface] table of a script.
type Surface struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	Capacity int `toml:"capacity"`
}

// Call is one [[call]] table. Which fields apply depends on Op.
type Call struct {
	Op string `toml:"op"`

	ID    string `toml:"id"`
	Child string `toml:"child"`

	Kind      string    `toml:"kind"`
	Rect      []float64 `toml:"rect"`
	Rotation  float64   `toml:"rotation"`
	Transform []float64 `toml:"transform"`
	Color     uint32    `toml:"color"`
	Blend     string    `toml:"blend"`
	Opacity   float64   `toml:"opacity"`
	Hidden    bool      `toml:"hidden"`
	Clip      bool      `toml:"clip"`

	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Zoom   float64 `toml:"zoom"`
	PanX   float64 `toml:"pan_x"`
	PanY   float64 `toml:"pan_y"`

	Cached bool `toml:"cached"`
}

// Script is a surface description and a list of host calls.
type Script struct {
	Surface Surface `toml:"surface"`
	Calls   []Call  `toml:"call"`
}

// ErrUnknownOp is returned for a call whose op is not recognized.
var ErrUnknownOp = errors.New("host: unknown op")

// ParseScript decodes a TOML script. Unknown keys are rejected.
func ParseScript(r io.Reader) (*Script, error) {
	var sc Script
	md, err := toml.NewDecoder(r).Decode(&sc)
	if err != nil {
		return nil, fmt.Errorf("host: parse script: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("host: parse script: unknown keys: %s", strings.Join(keys, ", "))
	}
	if sc.Surface.Width < 0 || sc.Surface.Height < 0 {
		return nil, fmt.Errorf("host: parse script: invalid surface %dx%d", sc.Surface.Width, sc.Surface.Height)
	}
	return &sc, nil
}

// LoadScript reads a TOML script from a file.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScript(f)
}

// Run initializes d from the surface table and replays every call in order.
// It stops at the first failing call; the error names the call index and op.
func (sc *Script) Run(d *Dispatcher) error {
	d.Init(sc.Surface.Width, sc.Surface.Height, sc.Surface.Capacity)
	for i, c := range sc.Calls {
		if err := c.apply(d); err != nil {
			return fmt.Errorf("host: call %d (%s): %w", i, c.Op, err)
		}
	}
	return nil
}

// apply dispatches c to d.
func (c Call) apply(d *Dispatcher) error {
	switch c.Op {
	case "resize":
		return d.Resize(c.Width, c.Height)
	case "set_view":
		return d.SetView(c.Zoom, c.PanX, c.PanY)
	case "use_shape":
		a, b, cc, dw, err := parseWords(c.ID)
		if err != nil {
			return err
		}
		return d.UseShape(a, b, cc, dw)
	case "set_kind":
		k, err := shape.ParseKind(c.Kind)
		if err != nil {
			return err
		}
		return d.SetShapeKind(int(k))
	case "set_selrect":
		if len(c.Rect) != 4 {
			return fmt.Errorf("rect needs 4 values, got %d", len(c.Rect))
		}
		return d.SetSelrect(c.Rect[0], c.Rect[1], c.Rect[2], c.Rect[3])
	case "set_rotation":
		return d.SetRotation(c.Rotation)
	case "set_transform":
		if len(c.Transform) != 6 {
			return fmt.Errorf("transform needs 6 values, got %d", len(c.Transform))
		}
		t := c.Transform
		return d.SetTransform(t[0], t[1], t[2], t[3], t[4], t[5])
	case "add_fill":
		return d.AddSolidFill(c.Color)
	case "clear_fills":
		return d.ClearFills()
	case "add_child":
		a, b, cc, dw, err := parseWords(c.Child)
		if err != nil {
			return err
		}
		return d.AddChild(a, b, cc, dw)
	case "clear_children":
		return d.ClearChildren()
	case "set_blend_mode":
		m, err := shape.ParseBlendMode(c.Blend)
		if err != nil {
			return err
		}
		return d.SetBlendMode(int(m))
	case "set_opacity":
		return d.SetOpacity(c.Opacity)
	case "set_hidden":
		return d.SetHidden(c.Hidden)
	case "set_clip_content":
		return d.SetClipContent(c.Clip)
	case "navigate":
		return d.Navigate()
	case "render":
		return d.Render(c.Cached)
	case "render_from_cache":
		return d.RenderFromCache()
	case "delete_shape":
		a, b, cc, dw, err := parseWords(c.ID)
		if err != nil {
			return err
		}
		return d.DeleteShape(a, b, cc, dw)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, c.Op)
	}
}

// parseWords parses a uuid string into host words. An empty string is the
// root shape.
func parseWords(s string) (a, b, c, d uint32, err error) {
	if s == "" || s == "root" {
		a, b, c, d = UUIDToWords(shape.Root)
		return a, b, c, d, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	a, b, c, d = UUIDToWords(id)
	return a, b, c, d, nil
}
