// internal/nodeid/types.go
package nodeid

// Kind distinguishes the three levels of the sector hierarchy.
type Kind int

const (
	// Sector is the top level of the hierarchy, e.g. "Utilities".
	Sector Kind = iota
	// Industry groups stocks within a sector, e.g. "Semiconductors".
	Industry
	// Stock is a leaf node identified by its ticker symbol.
	Stock
)

// Kinds lists every kind in hierarchy order, top to bottom.
var Kinds = []Kind{Sector, Industry, Stock}

// Key is the structured representation of a unique node identifier.
type Key struct {
	Kind Kind
	Name string
}

// SectorKey returns the key of the sector node with the given name.
func SectorKey(name string) Key { return Key{Kind: Sector, Name: name} }

// IndustryKey returns the key of the industry node with the given name.
func IndustryKey(name string) Key { return Key{Kind: Industry, Name: name} }

// StockKey returns the key of the stock node with the given symbol.
func StockKey(symbol string) Key { return Key{Kind: Stock, Name: symbol} }
