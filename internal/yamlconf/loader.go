// Package yamlconf provides the YAML implementation of the config.Loader
// interface. JSON is a subset of YAML, so the same loader reads .json files.
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/config"
	"github.com/vk/stockgraph/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions this loader handles.
var Extensions = []string{".yaml", ".yml", ".json"}

// ErrMissingField is returned when a stock entry lacks a required key.
var ErrMissingField = errors.New("missing required field")

// document is the top-level shape of a catalog file.
type document struct {
	Stocks []stock `yaml:"stocks"`
}

// stock uses pointers so absent keys can be told apart from empty values.
type stock struct {
	Symbol   *string `yaml:"symbol"`
	Industry *string `yaml:"industry"`
	Sector   *string `yaml:"sector"`
}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes each file and returns its stocks as catalog entries, in
// file order, then document order, then list order. Unknown keys are
// rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	var entries []catalog.Entry
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
		}
		fileEntries, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
		}
		logger.Debug("Decoded YAML file.", "file", path, "stocks", len(fileEntries))
		entries = append(entries, fileEntries...)
	}

	logger.Debug("YAML loading complete.", "entries", len(entries))
	return catalog.New(entries...), nil
}

// decode reads every document in data. Stocks from later documents follow
// those of earlier ones.
func decode(data []byte) ([]catalog.Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var entries []catalog.Entry
	for n := 0; ; n++ {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return entries, nil
			}
			if n > 0 {
				return nil, fmt.Errorf("document %d: %w", n+1, err)
			}
			return nil, err
		}

		docEntries, err := doc.entries()
		if err != nil {
			if n > 0 {
				return nil, fmt.Errorf("document %d: %w", n+1, err)
			}
			return nil, err
		}
		entries = append(entries, docEntries...)
	}
}

func (d document) entries() ([]catalog.Entry, error) {
	entries := make([]catalog.Entry, 0, len(d.Stocks))
	for i, s := range d.Stocks {
		var missing []error
		for _, f := range []struct {
			name string
			val  *string
		}{{"symbol", s.Symbol}, {"industry", s.Industry}, {"sector", s.Sector}} {
			if f.val == nil {
				missing = append(missing, fmt.Errorf("stocks[%d]: %w %q", i, ErrMissingField, f.name))
			}
		}
		if len(missing) > 0 {
			return nil, errors.Join(missing...)
		}
		entries = append(entries, catalog.Entry{Symbol: *s.Symbol, Industry: *s.Industry, Sector: *s.Sector})
	}
	return entries, nil
}
