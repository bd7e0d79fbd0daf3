// Package cli implements the netforest command-line interface.
//
// This package provides commands for inspecting and changing networks given
// in bracket notation or as JSON, YAML or text files, rendering them as
// node-link diagrams, and running scripted scenarios. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - show, list, height, levels, route: Query a network
//   - connect, disconnect, merge: Change a network and write the result
//   - validate, export: Check and convert network files
//   - render: Generate DOT, SVG, PDF, or PNG diagrams
//   - run: Execute TOML scenario files
//   - cache: Manage the render cache
//
// A network argument is either a file path or a bracket-notation literal
// such as "(1.1.1.1 2.2.2.2)".
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports rejected network changes. Loggers are passed through
// context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/netforest/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netforest/pkg/network"
)

// newLogger returns the CLI logger. Lines carry a "15:04:05.00" timestamp
// and the netforest prefix, and are filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          appName,
		Level:           level,
	})
}

// networkFields returns the key-value pairs every network log line carries.
func networkFields(n *network.Network) []any {
	return []any{"nodes", n.Len(), "subnets", len(n.Roots())}
}

// progress times one command operation on a network.
type progress struct {
	logger *log.Logger
	op     string
	start  time.Time
}

func newProgress(l *log.Logger, op string) *progress {
	return &progress{logger: l, op: op, start: time.Now()}
}

// done logs the operation with the resulting size of n, the elapsed time
// rounded to milliseconds and any extra key-value pairs.
//
//	14:32:01.45 INFO netforest: connect nodes=4 subnets=1 elapsed=2ms changed=true
func (p *progress) done(n *network.Network, keyvals ...any) {
	fields := append(networkFields(n), "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(p.op, append(fields, keyvals...)...)
}

type loggerKey struct{}

// withLogger attaches l to ctx for the commands run under it.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
