package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/cache"
	"github.com/matzehuels/netforest/pkg/errors"
	nfio "github.com/matzehuels/netforest/pkg/io"
	"github.com/matzehuels/netforest/pkg/network"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "netforest"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Network Input
// =============================================================================

// loadNetwork reads a network from src, which is either a bracket-notation
// literal or a .json, .yaml, .yml, .txt or .nf file. Rejected changes to the
// returned network are logged at debug level.
func (c *CLI) loadNetwork(src string) (*network.Network, error) {
	opt := network.WithLogger(c.Logger)
	if literal := strings.TrimSpace(src); strings.HasPrefix(literal, "(") {
		return network.Parse(literal, opt)
	}
	if err := errors.ValidatePath(src); err != nil {
		return nil, err
	}
	if _, err := os.Stat(src); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "network %s", src)
	}
	n, err := nfio.Import(src, opt)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded", append([]any{"source", src}, networkFields(n)...)...)
	return n, nil
}

// parseAddresses parses every argument as an address.
func parseAddresses(args ...string) ([]address.Address, error) {
	addrs := make([]address.Address, len(args))
	for i, s := range args {
		a, err := address.Parse(s)
		if err != nil {
			return nil, err
		}
		addrs[i] = a
	}
	return addrs, nil
}

// requireAddress fails with NOT_FOUND unless a is part of n.
func requireAddress(n *network.Network, a address.Address) error {
	if !n.Contains(a) {
		return errors.New(errors.ErrCodeNotFound, "%s is not part of the network", a)
	}
	return nil
}

// =============================================================================
// Output
// =============================================================================

// writeNetwork stores n at path, choosing the format from the extension, or
// prints it in bracket notation to w when path is empty.
func writeNetwork(w io.Writer, n *network.Network, path string) error {
	if path == "" {
		return nfio.WriteText(n, w)
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := nfio.Export(n, path); err != nil {
		return err
	}
	printFile(w, path)
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns w wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(w io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{w}, nil
	}
	return os.Create(path)
}

// =============================================================================
// Cache
// =============================================================================

// newCache opens the render cache, falling back to a disabled cache when it
// is switched off or its directory cannot be used.
func newCache(logger *log.Logger, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache("--no-cache")
	}
	dir, err := cacheDir()
	if err != nil {
		return disabledCache(logger, err.Error())
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return disabledCache(logger, errors.UserMessage(err))
	}
	return fc
}

func disabledCache(logger *log.Logger, reason string) cache.Cache {
	nc := cache.NewNullCache(reason)
	logger.Warn("render cache disabled", "reason", nc.Reason())
	return nc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/netforest/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
