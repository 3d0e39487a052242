package hcl

// fileRoot decodes the top-level blocks of a catalog file.
type fileRoot struct {
	Stocks []*stockBlock `hcl:"stock,block"`
}

// stockBlock represents a `stock "SYMBOL" { ... }` block.
type stockBlock struct {
	Symbol   string `hcl:"symbol,label"`
	Industry string `hcl:"industry"`
	Sector   string `hcl:"sector"`
}
