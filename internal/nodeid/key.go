// internal/nodeid/key.go
package nodeid

import "fmt"

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Sector:
		return "sector"
	case Industry:
		return "industry"
	case Stock:
		return "stock"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Sector && k <= Stock
}

// String serializes the Key into its canonical `kind/name` representation.
func (k Key) String() string {
	return k.Kind.String() + separator + k.Name
}

// Label is the human-readable text drawn next to the node.
func (k Key) Label() string {
	return k.Name
}

// MarshalText implements encoding.TextMarshaler so keys can be used as JSON
// object keys and values.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Kind.Valid() {
		return nil, fmt.Errorf("cannot marshal key with unknown kind %d", int(k.Kind))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
