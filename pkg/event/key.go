package event

import "fmt"

type keyKind uint8

const (
	keyInvalid keyKind = iota
	keyIndex
	keyName
)

// Key addresses a field either by position or by name. Construct one
// with Index or Name; the zero Key is invalid and fails resolution.
type Key struct {
	kind keyKind
	idx  int
	name string
}

// Index addresses a field by position.
func Index(i int) Key { return Key{kind: keyIndex, idx: i} }

// Name addresses a field by name.
func Name(s string) Key { return Key{kind: keyName, name: s} }

// String renders the key for error messages.
func (k Key) String() string {
	switch k.kind {
	case keyIndex:
		return fmt.Sprintf("#%d", k.idx)
	case keyName:
		return k.name
	default:
		return "<invalid key>"
	}
}
