package catalog

// Entry classifies a single stock.
type Entry struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	Industry string `yaml:"industry" json:"industry"`
	Sector   string `yaml:"sector" json:"sector"`
}

// Catalog is an ordered, read-only collection of entries.
type Catalog struct {
	entries []Entry
}

// New returns a catalog holding a copy of the given entries, in order.
// Entries are accepted as-is; see Validate for consistency reporting.
func New(entries ...Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Entries returns a copy of the catalog entries in order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Merge returns a new catalog with the entries of c followed by those of
// other. Neither input is modified.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	return New(append(c.Entries(), other.Entries()...)...)
}
