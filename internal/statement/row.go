package statement

import "strings"

// Row is one raw statement record. Values holds every header whose cell was present,
// verbatim as decoded; Header keeps the column order of the source file.
type Row struct {
	Line   int
	Header []string
	Values map[string]string
}

// Value returns the cell under the exact header name.
func (r Row) Value(column string) (string, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// Canonical returns the row keyed by CanonicalKey, keeping the first column for each key.
func (r Row) Canonical() map[string]string {
	out := make(map[string]string, len(r.Header))

	for _, h := range r.Header {
		v, ok := r.Values[h]
		if !ok {
			continue
		}

		k := CanonicalKey(h)
		if _, seen := out[k]; seen {
			continue
		}

		out[k] = v
	}

	return out
}

// CanonicalKey folds a header name to snake case: "Producer Name" -> "producer_name".
func CanonicalKey(column string) string {
	k := strings.ToLower(strings.TrimSpace(column))

	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}

		return r
	}, k)
}
