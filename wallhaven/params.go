package wallhaven

import "strings"

// Query parameter names, per https://wallhaven.cc/help/api#search.
const (
	ParamQuery       = "q"
	ParamCategories  = "categories"
	ParamPurity      = "purity"
	ParamSorting     = "sorting"
	ParamOrder       = "order"
	ParamTopRange    = "topRange"
	ParamAtleast     = "atleast"
	ParamResolutions = "resolutions"
	ParamRatios      = "ratios"
	ParamColors      = "colors"
	ParamPage        = "page"
	ParamSeed        = "seed"
	ParamPerPage     = "per_page"
)

// Sorting values.
const (
	SortDateAdded = "date_added"
	SortRelevance = "relevance"
	SortRandom    = "random"
	SortViews     = "views"
	SortFavorites = "favorites"
	SortToplist   = "toplist"
)

// Toplist ranges. Only meaningful while sorting by toplist.
const (
	Range1Day    = "1d"
	Range3Days   = "3d"
	Range1Week   = "1w"
	Range1Month  = "1M"
	Range3Months = "3M"
	Range6Months = "6M"
	Range1Year   = "1y"
)

// Sort orders.
const (
	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// ParameterSet is one resolved set of query parameters for a search or
// listing call. Keys match the API's parameter names exactly; empty values
// are never stored.
type ParameterSet map[string]string

// Set stores a parameter, dropping empty values.
func (p ParameterSet) Set(key, value string) ParameterSet {
	if value != "" {
		p[key] = value
	}
	return p
}

// Delete removes a parameter.
func (p ParameterSet) Delete(key string) ParameterSet {
	delete(p, key)
	return p
}

// Clone returns an independent copy.
func (p ParameterSet) Clone() ParameterSet {
	clone := make(ParameterSet, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

func (p ParameterSet) apply(other ParameterSet) {
	for k, v := range other {
		if v != "" {
			p[k] = v
		}
	}
}

// The positional order the API encodes category and purity bitmasks in.
var (
	categoryFields = []string{"general", "anime", "people"}
	purityFields   = []string{"sfw", "sketchy", "nsfw"}
)

// bitmask renders enabled as a positional 1/0 string over fields, e.g.
// ["general","people"] over the category fields becomes "101".
func bitmask(enabled, fields []string) string {
	var b strings.Builder
	for _, field := range fields {
		on := false
		for _, e := range enabled {
			if e == field {
				on = true
				break
			}
		}
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// settingsParamTable translates fetched browsing settings into their search
// parameter equivalents, one entry per translated field. Entries producing
// "" are skipped. Wallhaven.Params is applied after this table, so explicit
// parameters always win.
var settingsParamTable = []struct {
	param string
	value func(*UserSettings) string
}{
	{ParamCategories, func(s *UserSettings) string {
		if len(s.Categories) == 0 {
			return ""
		}
		return bitmask(s.Categories, categoryFields)
	}},
	{ParamPurity, func(s *UserSettings) string {
		if len(s.Purity) == 0 {
			return ""
		}
		return bitmask(s.Purity, purityFields)
	}},
	{ParamSorting, func(s *UserSettings) string { return s.Sorting }},
	{ParamTopRange, func(s *UserSettings) string { return s.ToplistRange }},
	{ParamPerPage, func(s *UserSettings) string { return s.PerPage }},
	{ParamResolutions, func(s *UserSettings) string { return strings.Join(s.Resolutions, ",") }},
	{ParamRatios, func(s *UserSettings) string { return strings.Join(s.AspectRatios, ",") }},
}

func (s *UserSettings) searchParams() ParameterSet {
	p := ParameterSet{}
	for _, entry := range settingsParamTable {
		p.Set(entry.param, entry.value(s))
	}
	return p
}

// resolveParams merges fetched browsing settings (may be nil) and explicit
// overrides into the final parameter set. Overrides win on key collisions.
// topRange only applies while sorting by toplist and is dropped otherwise;
// that is the only cross-field rule.
func resolveParams(settings *UserSettings, overrides ParameterSet) ParameterSet {
	resolved := ParameterSet{}
	if settings != nil {
		resolved.apply(settings.searchParams())
	}
	resolved.apply(overrides)
	if resolved[ParamSorting] != SortToplist {
		delete(resolved, ParamTopRange)
	}
	return resolved
}
