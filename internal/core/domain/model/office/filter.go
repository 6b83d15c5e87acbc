package office

import "strings"

// Filter is a sparse set of optional search criteria over post offices.
// Every field is a case-insensitive substring constraint; blank fields
// contribute no constraint, so the zero value matches every office.
type Filter struct {
	Name     string
	City     string
	Postcode string
	Street   string
}

// IsEmpty reports whether the filter carries no constraint at all.
func (f Filter) IsEmpty() bool {
	return f.Name == "" && f.City == "" && f.Postcode == "" && f.Street == ""
}

// Matches evaluates the conjunction of all present constraints against an
// office. Matches has no side effects.
func (f Filter) Matches(o *Office) bool {
	if o == nil {
		return false
	}

	return containsFold(o.Name(), f.Name) &&
		containsFold(o.City(), f.City) &&
		containsFold(o.Postcode(), f.Postcode) &&
		containsFold(o.Street(), f.Street)
}

// containsFold reports whether value contains needle case-insensitively;
// a blank needle always matches.
func containsFold(value, needle string) bool {
	if strings.TrimSpace(needle) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}
