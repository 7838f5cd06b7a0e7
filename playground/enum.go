package playground

import (
	"fmt"
)

// enumTable is the single bidirectional mapping between the variants of an
// option enum and their canonical wire strings. Variants are indexed from zero
// and the zero variant is the default of the enum.
type enumTable[T ~int] struct {
	kind   string
	names  []string
	values map[string]T
}

func newEnumTable[T ~int](kind string, names ...string) enumTable[T] {
	values := make(map[string]T, len(names))

	for i, name := range names {
		if _, ok := values[name]; ok {
			panic(fmt.Sprintf("playground: duplicate %s value %q", kind, name))
		}

		values[name] = T(i)
	}

	return enumTable[T]{kind: kind, names: names, values: values}
}

func (t enumTable[T]) valid(v T) bool {
	return int(v) >= 0 && int(v) < len(t.names)
}

func (t enumTable[T]) render(v T) string {
	if !t.valid(v) {
		return fmt.Sprintf("%s(%d)", t.kind, int(v))
	}

	return t.names[v]
}

func (t enumTable[T]) parse(s string) (T, error) {
	if v, ok := t.values[s]; ok {
		return v, nil
	}

	return 0, &ParseError{Kind: t.kind, Value: s, Allowed: t.strings()}
}

func (t enumTable[T]) marshal(v T) ([]byte, error) {
	if !t.valid(v) {
		return nil, &ParseError{Kind: t.kind, Value: t.render(v), Allowed: t.strings()}
	}

	return []byte(t.names[v]), nil
}

func (t enumTable[T]) strings() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}
