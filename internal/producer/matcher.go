package producer

import "strings"

// Row keys, after header canonicalisation, that may name the producer.
var (
	NameHints  = []string{"producer", "producer_name", "agent", "agent_name", "writer"}
	EmailHints = []string{"producer_email", "agent_email"}
)

// Match resolves the producer owning a row. values is keyed by canonical header.
//
// Only producers in workspaceID are candidates. A display-name hint is tried first, then an
// email hint; failing both, a workspace with exactly one producer gets it by default.
// Anything else is unassigned (nil).
func Match(values map[string]string, roster []*Producer, workspaceID int64) *Producer {
	candidates := make([]*Producer, 0, len(roster))

	for _, p := range roster {
		if p.WorkspaceID == workspaceID {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	if p := matchHint(values, NameHints, candidates, func(p *Producer) string { return p.DisplayName }); p != nil {
		return p
	}

	if p := matchHint(values, EmailHints, candidates, func(p *Producer) string { return p.Email }); p != nil {
		return p
	}

	if len(candidates) == 1 {
		return candidates[0]
	}

	return nil
}

func matchHint(values map[string]string, keys []string, candidates []*Producer, field func(*Producer) string) *Producer {
	for _, key := range keys {
		hint := strings.TrimSpace(values[key])
		if hint == "" {
			continue
		}

		for _, p := range candidates {
			if v := strings.TrimSpace(field(p)); v != "" && strings.EqualFold(v, hint) {
				return p
			}
		}
	}

	return nil
}
