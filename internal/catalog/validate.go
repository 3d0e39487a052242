package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedEntry is returned for entries with an empty field.
	ErrMalformedEntry = errors.New("malformed catalog entry")
	// ErrDuplicateSymbol marks a symbol listed more than once.
	ErrDuplicateSymbol = errors.New("duplicate stock symbol")
	// ErrIndustryConflict marks an industry classified under two sectors.
	ErrIndustryConflict = errors.New("industry belongs to more than one sector")
	// ErrLabelCollision marks a label shared by two different node kinds.
	ErrLabelCollision = errors.New("label used by more than one node kind")
)

// IssueKind classifies a consistency problem found by Validate.
type IssueKind int

const (
	IssueMalformed IssueKind = iota
	IssueDuplicateSymbol
	IssueIndustrySectorConflict
	IssueLabelCollision
)

func (k IssueKind) String() string {
	switch k {
	case IssueMalformed:
		return "malformed"
	case IssueDuplicateSymbol:
		return "duplicate_symbol"
	case IssueIndustrySectorConflict:
		return "industry_conflict"
	case IssueLabelCollision:
		return "label_collision"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// Issue describes one consistency problem in a catalog.
type Issue struct {
	Kind    IssueKind
	Index   int // position of the offending entry
	Label   string
	Message string
}

// Err returns the issue as an error wrapping the matching sentinel.
func (i Issue) Err() error {
	var sentinel error
	switch i.Kind {
	case IssueMalformed:
		sentinel = ErrMalformedEntry
	case IssueDuplicateSymbol:
		sentinel = ErrDuplicateSymbol
	case IssueIndustrySectorConflict:
		sentinel = ErrIndustryConflict
	case IssueLabelCollision:
		sentinel = ErrLabelCollision
	default:
		sentinel = errors.New("catalog issue")
	}
	return fmt.Errorf("entry %d (%s): %w: %s", i.Index, i.Label, sentinel, i.Message)
}

// Issues is the result of Validate.
type Issues []Issue

// Err joins all issues into a single error, or returns nil when empty.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	errs := make([]error, 0, len(is))
	for _, i := range is {
		errs = append(errs, i.Err())
	}
	return errors.Join(errs...)
}

// CheckEntry reports whether an entry has all of its fields set.
func CheckEntry(e Entry) error {
	var missing []string
	if strings.TrimSpace(e.Symbol) == "" {
		missing = append(missing, "symbol")
	}
	if strings.TrimSpace(e.Industry) == "" {
		missing = append(missing, "industry")
	}
	if strings.TrimSpace(e.Sector) == "" {
		missing = append(missing, "sector")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformedEntry, strings.Join(missing, ", "))
	}
	return nil
}

// Validate inspects the catalog for entries that would break the tree shape
// of the hierarchy. It never modifies the catalog and never fails; callers
// decide whether the returned issues are fatal.
func (c *Catalog) Validate() Issues {
	var issues Issues

	symbolAt := make(map[string]int)
	industrySector := make(map[string]string)
	labelKind := make(map[string]string)

	claim := func(i int, label, kind string) {
		if prev, ok := labelKind[label]; ok && prev != kind {
			issues = append(issues, Issue{
				Kind:    IssueLabelCollision,
				Index:   i,
				Label:   label,
				Message: fmt.Sprintf("used as both %s and %s", prev, kind),
			})
			return
		}
		labelKind[label] = kind
	}

	for i, e := range c.Entries() {
		if err := CheckEntry(e); err != nil {
			issues = append(issues, Issue{Kind: IssueMalformed, Index: i, Label: e.Symbol, Message: err.Error()})
			continue
		}

		if prev, ok := symbolAt[e.Symbol]; ok {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateSymbol,
				Index:   i,
				Label:   e.Symbol,
				Message: fmt.Sprintf("first listed at entry %d", prev),
			})
		} else {
			symbolAt[e.Symbol] = i
		}

		if sector, ok := industrySector[e.Industry]; ok && sector != e.Sector {
			issues = append(issues, Issue{
				Kind:    IssueIndustrySectorConflict,
				Index:   i,
				Label:   e.Industry,
				Message: fmt.Sprintf("classified under %q and %q", sector, e.Sector),
			})
		} else if !ok {
			industrySector[e.Industry] = e.Sector
		}

		claim(i, e.Sector, "sector")
		claim(i, e.Industry, "industry")
		claim(i, e.Symbol, "stock")
	}

	return issues
}
