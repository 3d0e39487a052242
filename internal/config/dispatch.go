package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/vk/stockgraph/internal/fsutil"
)

// ErrUnsupportedExtension is returned for an explicitly named file whose
// extension has no registered loader.
var ErrUnsupportedExtension = errors.New("unsupported catalog file extension")

// ErrNoCatalogFiles is returned when the given paths contain no catalog files.
var ErrNoCatalogFiles = errors.New("no catalog files found")

// Dispatcher routes each catalog file to the Loader registered for its
// extension. It implements Loader itself.
type Dispatcher struct {
	loaders map[string]Loader
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{loaders: make(map[string]Loader)}
}

// Register binds a loader to one or more file extensions, such as ".hcl".
func (d *Dispatcher) Register(l Loader, extensions ...string) *Dispatcher {
	for _, ext := range extensions {
		d.loaders[strings.ToLower(ext)] = l
	}
	return d
}

// Extensions returns the registered extensions in sorted order.
func (d *Dispatcher) Extensions() []string {
	exts := make([]string, 0, len(d.loaders))
	for ext := range d.loaders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Load expands directories, loads every file with the loader for its
// extension and merges the results in path order.
func (d *Dispatcher) Load(ctx context.Context, paths ...string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Catalog loader started.", "path_count", len(paths))

	files, err := d.findFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCatalogFiles, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered catalog files.", "count", len(files))

	merged := catalog.New()
	for _, file := range files {
		l := d.loaders[extOf(file)]
		c, err := l.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded catalog file.", "file", file, "entries", c.Len())
		merged = merged.Merge(c)
	}

	logger.Info("Catalog loading complete.", "files", len(files), "entries", merged.Len())
	return merged, nil
}

// findFiles walks all given paths and returns a flat, de-duplicated list of
// files with a registered extension. Directory contents come in lexical order.
func (d *Dispatcher) findFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			all = append(all, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, d.Extensions()...)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}

		if _, ok := d.loaders[extOf(path)]; !ok {
			return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedExtension, path, strings.Join(d.Extensions(), ", "))
		}
		add(filepath.Clean(path))
	}
	return all, nil
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
