package statement

import (
	"maps"
	"strings"
)

// Resolver maps carrier column spellings to canonical fields using ordered alias lists.
type Resolver struct {
	aliases map[Field][]string
}

// NewResolver builds a resolver from DefaultAliases. Extra aliases are tried after the
// defaults, so configuring them never changes how an existing statement resolves.
func NewResolver(extra map[Field][]string) *Resolver {
	aliases := make(map[Field][]string, len(DefaultAliases))

	for f, list := range DefaultAliases {
		aliases[f] = append(append([]string(nil), list...), extra[f]...)
	}

	return &Resolver{aliases: aliases}
}

// With returns a copy whose override aliases are tried before everything else.
// Per-carrier column mappings enter the pipeline here.
func (r *Resolver) With(overrides map[Field][]string) *Resolver {
	if len(overrides) == 0 {
		return r
	}

	aliases := maps.Clone(r.aliases)

	for f, list := range overrides {
		if !f.Valid() {
			continue
		}

		aliases[f] = append(append([]string(nil), list...), r.aliases[f]...)
	}

	return &Resolver{aliases: aliases}
}

// Aliases returns the lookup order for a field.
func (r *Resolver) Aliases(f Field) []string {
	return r.aliases[f]
}

// Lookup returns the first non-blank value for a field. Each alias is tried as an exact
// header first, then as a case-insensitive match in header order.
func (r *Resolver) Lookup(row Row, f Field) (string, bool) {
	for _, alias := range r.aliases[f] {
		if v, ok := row.Values[alias]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}

		for _, h := range row.Header {
			if h == alias || !strings.EqualFold(strings.TrimSpace(h), alias) {
				continue
			}

			if v := strings.TrimSpace(row.Values[h]); v != "" {
				return v, true
			}
		}
	}

	return "", false
}

// claims reports whether a header is one of the aliases of any field.
func (r *Resolver) claims(header string) bool {
	h := strings.TrimSpace(header)

	for _, f := range fieldOrder {
		for _, alias := range r.aliases[f] {
			if strings.EqualFold(h, alias) {
				return true
			}
		}
	}

	return false
}

// Additional returns every column not claimed by a canonical field, so carrier-specific
// data survives normalization.
func (r *Resolver) Additional(row Row) map[string]string {
	out := make(map[string]string)

	for _, h := range row.Header {
		if r.claims(h) {
			continue
		}

		if v, ok := row.Values[h]; ok {
			out[h] = v
		}
	}

	return out
}
