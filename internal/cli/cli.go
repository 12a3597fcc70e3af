// Package cli implements the ggstate command-line interface.
//
// The CLI replays a TOML call script into a fresh session and writes the
// resulting surface to PNG. It is built on cobra and logs through
// charmbracelet/log, which is also installed as the slog handler of the
// ggstate and render packages.
//
// # Commands
//
//   - run: replay a call script and save the surface
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggstate"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is reported by --version.
var version = "dev"

// SetVersion sets the version string reported by --version.
func SetVersion(v string) {
	version = v
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI writing log output to w. The logger also receives the
// library's slog output.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	ggstate.SetLogger(slog.New(c.Logger))
	return c
}

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ggstate",
		Short:        "ggstate replays host call scripts into a render session",
		Long:         `ggstate drives a render session from a TOML call script, the same calls a host makes across the call boundary, and saves the rendered surface as PNG.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.runCommand())

	return root
}
