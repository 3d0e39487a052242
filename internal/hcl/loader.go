package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/config"
	"github.com/vk/stockgraph/internal/ctxlog"
)

// Extensions lists the file extensions this loader handles.
var Extensions = []string{".hcl"}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses each file and returns the stock blocks as catalog entries,
// in file order and then block order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	evalCtx, err := buildEvalContext(ctx)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	var entries []catalog.Entry

	for _, file := range paths {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, s := range root.Stocks {
			entries = append(entries, catalog.Entry{
				Symbol:   s.Symbol,
				Industry: s.Industry,
				Sector:   s.Sector,
			})
		}
		logger.Debug("Decoded HCL file.", "file", file, "stocks", len(root.Stocks))
	}

	logger.Debug("HCL loading complete.", "entries", len(entries))
	return catalog.New(entries...), nil
}
