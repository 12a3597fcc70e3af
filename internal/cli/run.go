package cli

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggstate"
	"github.com/gogpu/ggstate/host"
	"github.com/gogpu/ggstate/render"
	"github.com/gogpu/ggstate/shape"
)

const (
	defaultOutput     = "out.png"
	defaultBackground = 0xffffffff // opaque white
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	output     string // PNG path, empty to skip writing
	cached     bool   // finish with a full render that refreshes the cache
	trace      bool   // log every engine call
	background uint32 // clear color as 0xAARRGGBB
}

// errNoImage is returned when the engine exposes no surface to save.
var errNoImage = errors.New("engine has no image surface")

func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{
		output:     defaultOutput,
		background: defaultBackground,
	}

	cmd := &cobra.Command{
		Use:   "run [script.toml]",
		Short: "Replay a call script and save the surface as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScript(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file (empty to skip)")
	cmd.Flags().BoolVar(&opts.cached, "cached", false, "finish with a full render that generates the cached surface image")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log every engine call")
	cmd.Flags().Uint32Var(&opts.background, "background", opts.background, "background color as 0xAARRGGBB")

	return cmd
}

func (c *CLI) runScript(ctx context.Context, path string, opts *runOpts) error {
	start := time.Now()

	sc, err := host.LoadScript(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded script", "path", path, "calls", len(sc.Calls),
		"width", sc.Surface.Width, "height", sc.Surface.Height)

	var engine render.Engine = render.NewSoftwareEngine(sc.Surface.Width, sc.Surface.Height)
	var rec *render.Recorder
	if opts.trace {
		rec = render.NewRecorder(engine)
		engine = rec
	}

	d := host.NewDispatcher(
		ggstate.WithEngine(engine),
		ggstate.WithBackground(shape.SolidFill(opts.background).Color),
	)
	runErr := sc.Run(d)
	if rec != nil {
		for i, call := range rec.Calls() {
			c.Logger.Info("engine", "n", i, "call", call.String())
		}
	}
	if runErr != nil {
		return runErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.cached {
		if err := d.Render(true); err != nil {
			return err
		}
	}

	if opts.output != "" {
		if err := savePNG(d.Session(), opts.output); err != nil {
			return err
		}
		c.Logger.Info("wrote surface", "path", opts.output)
	}
	c.Logger.Infof("Replayed %d calls (%s)", len(sc.Calls), time.Since(start).Round(time.Millisecond))
	return nil
}

// savePNG encodes the session surface to path.
func savePNG(s *ggstate.Session, path string) error {
	img := s.Image()
	if img == nil {
		return errNoImage
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
