package statement

import "strings"

// UnspecifiedCarrier names the group for rows with an empty carrier cell.
const UnspecifiedCarrier = "Unspecified"

// Group is the rows of one statement that belong to a single carrier.
type Group struct {
	Carrier string
	Rows    []Row
}

// GroupByCarrier splits rows by carrier value, compared trimmed and case-insensitively.
// Groups come out in the order their carrier first appears and rows keep file order;
// the group is named after the first spelling seen.
func (s *Statement) GroupByCarrier() []Group {
	var groups []Group

	index := make(map[string]int)

	for _, row := range s.Rows {
		name := strings.TrimSpace(row.Values[s.CarrierColumn])
		if name == "" {
			name = UnspecifiedCarrier
		}

		key := strings.ToLower(name)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Carrier: name})
		}

		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups
}
