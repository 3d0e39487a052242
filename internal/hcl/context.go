package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/stockgraph/internal/catalog"
	"github.com/vk/stockgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// buildEvalContext creates the evaluation context shared by every file. It
// exposes `sector.<snake_case>` for the GICS sector names and a few string
// functions.
func buildEvalContext(ctx context.Context) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building HCL evaluation context.")

	sectors, err := gocty.ToCtyValue(catalog.Sectors, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("failed to convert sector table: %w", err)
	}

	vars := map[string]cty.Value{
		"sector": cty.ObjectVal(sectors.AsValueMap()),
	}
	funcs := map[string]function.Function{
		"upper": stdlib.UpperFunc,
		"lower": stdlib.LowerFunc,
		"trim":  stdlib.TrimSpaceFunc,
	}

	logger.Debug("Finished building HCL evaluation context.", "vars_count", len(vars), "sector_count", len(catalog.Sectors))
	return &hcl.EvalContext{Variables: vars, Functions: funcs}, nil
}
