package commission

import "strings"

// RawCategory tags imported rows whose statement carried no category.
const RawCategory = "raw"

// ImportCategory returns the category stored for an imported row. Any carrier value is kept
// as-is after folding; imports never coerce to the org's allow-list.
func ImportCategory(value *string) string {
	if value == nil {
		return RawCategory
	}

	v := strings.ToLower(strings.TrimSpace(*value))
	if v == "" {
		return RawCategory
	}

	return v
}
