// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"strings"
)

const separator = "/"

// ParseKind converts the lowercase kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sector":
		return Sector, nil
	case "industry":
		return Industry, nil
	case "stock":
		return Stock, nil
	default:
		return 0, fmt.Errorf("unknown node kind %q", s)
	}
}

// Parse creates a Key from its canonical `kind/name` string. Only the first
// separator is significant, so names may themselves contain slashes.
func Parse(rawID string) (Key, error) {
	if rawID == "" {
		return Key{}, fmt.Errorf("identifier cannot be empty")
	}

	kindStr, name, found := strings.Cut(rawID, separator)
	if !found {
		return Key{}, fmt.Errorf("identifier %q is missing the kind prefix", rawID)
	}

	kind, err := ParseKind(kindStr)
	if err != nil {
		return Key{}, fmt.Errorf("invalid identifier %q: %w", rawID, err)
	}
	if strings.TrimSpace(name) == "" {
		return Key{}, fmt.Errorf("identifier %q has an empty name", rawID)
	}

	return Key{Kind: kind, Name: name}, nil
}
