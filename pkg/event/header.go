package event

import "github.com/Stratigraph/esal/pkg/errors"

// Header describes a collection of fields, like a row in a table, by
// giving the fields names and positions. It is immutable after
// construction and safe to share by reference across any number of
// records; it never copies per record.
//
// Names are not validated for uniqueness. If a name repeats, the later
// position wins in name lookups while position-to-name stays exact.
type Header struct {
	names []string
	index map[string]int
}

// NewHeader creates a header from the given field names, in order.
func NewHeader(names ...string) *Header {
	h := &Header{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	copy(h.names, names)
	for i, name := range h.names {
		h.index[name] = i
	}
	return h
}

// Len returns the number of fields.
func (h *Header) Len() int { return len(h.names) }

// Resolve canonicalizes a field key to its position. Index keys are
// range-checked, name keys are looked up, and the zero Key fails with a
// CodeBadKey error.
func (h *Header) Resolve(k Key) (int, error) {
	switch k.kind {
	case keyIndex:
		if k.idx < 0 || k.idx >= len(h.names) {
			return 0, errors.IndexOutOfRange(k.idx, len(h.names))
		}
		return k.idx, nil
	case keyName:
		return h.IndexOf(k.name)
	default:
		return 0, errors.BadKey(k)
	}
}

// NameOf returns the name at the given position.
func (h *Header) NameOf(index int) (string, error) {
	if index < 0 || index >= len(h.names) {
		return "", errors.IndexOutOfRange(index, len(h.names))
	}
	return h.names[index], nil
}

// IndexOf returns the position of the given name.
func (h *Header) IndexOf(name string) (int, error) {
	i, ok := h.index[name]
	if !ok {
		return 0, errors.UnknownField(name)
	}
	return i, nil
}

// Names returns the field names in order. The slice is a copy.
func (h *Header) Names() []string {
	names := make([]string, len(h.names))
	copy(names, h.names)
	return names
}
