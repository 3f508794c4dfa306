package catalog

import (
	"strings"

	"github.com/okunev/musicbox/internal/common"
)

// Filter is the set of optional search attributes accepted by the query
// endpoint.
type Filter struct {
	Title  string
	Year   string
	Artist string
	Album  string
}

// Normalize trims surrounding whitespace from every attribute.
func (f Filter) Normalize() Filter {
	return Filter{
		Title:  strings.TrimSpace(f.Title),
		Year:   strings.TrimSpace(f.Year),
		Artist: strings.TrimSpace(f.Artist),
		Album:  strings.TrimSpace(f.Album),
	}
}

func (f Filter) IsEmpty() bool {
	return f.Title == "" && f.Year == "" && f.Artist == "" && f.Album == ""
}

// PlanKind identifies the access path chosen for a filter set.
type PlanKind int

const (
	PlanInvalid PlanKind = iota
	PlanArtistIndex
	PlanAlbumIndex
	PlanYearIndex
	PlanTitleIndex
	PlanScan
)

// Plan is the executable form of an access-path decision. Value carries the
// equality key for index plans; scan plans filter on the whole Filter.
type Plan struct {
	Kind   PlanKind
	Value  string
	Filter Filter
}

func (k PlanKind) String() string {
	switch k {
	case PlanArtistIndex:
		return "artist-index"
	case PlanAlbumIndex:
		return "album-index"
	case PlanYearIndex:
		return "year-index"
	case PlanTitleIndex:
		return "title-index"
	case PlanScan:
		return "scan"
	default:
		return "invalid"
	}
}

// planRules is the access-path decision table, evaluated top to bottom.
// A single non-empty attribute is served by its dedicated index; every
// other non-empty combination falls through to the scan path. The rules
// are mutually exclusive by construction.
var planRules = []struct {
	kind    PlanKind
	matches func(Filter) bool
	value   func(Filter) string
}{
	{
		kind:    PlanArtistIndex,
		matches: func(f Filter) bool { return f.Artist != "" && f.Album == "" && f.Year == "" && f.Title == "" },
		value:   func(f Filter) string { return f.Artist },
	},
	{
		kind:    PlanAlbumIndex,
		matches: func(f Filter) bool { return f.Album != "" && f.Artist == "" && f.Year == "" && f.Title == "" },
		value:   func(f Filter) string { return f.Album },
	},
	{
		kind:    PlanYearIndex,
		matches: func(f Filter) bool { return f.Year != "" && f.Artist == "" && f.Album == "" && f.Title == "" },
		value:   func(f Filter) string { return f.Year },
	},
	{
		kind:    PlanTitleIndex,
		matches: func(f Filter) bool { return f.Title != "" && f.Artist == "" && f.Album == "" && f.Year == "" },
		value:   func(f Filter) string { return f.Title },
	},
	{
		kind:    PlanScan,
		matches: func(f Filter) bool { return !f.IsEmpty() },
		value:   func(Filter) string { return "" },
	},
}

// PlanFor normalizes the filter and picks the access path. An entirely
// empty filter fails with common.ErrNoFilter.
func PlanFor(f Filter) (Plan, error) {
	f = f.Normalize()
	for _, rule := range planRules {
		if rule.matches(f) {
			return Plan{Kind: rule.kind, Value: rule.value(f), Filter: f}, nil
		}
	}
	return Plan{Kind: PlanInvalid}, common.ErrNoFilter
}
