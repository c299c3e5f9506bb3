package wallhaven

import "encoding/json"

// MetaQuery is the search query the API echoes back. It is a plain string
// for keyword searches and an {id, tag} object for exact-tag searches.
type MetaQuery struct {
	Text  string
	TagID int
	Tag   string
}

func (q *MetaQuery) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &q.Text)
	}
	var obj struct {
		ID  int    `json:"id"`
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	q.TagID, q.Tag = obj.ID, obj.Tag
	return nil
}

// Meta is the pagination block of a listing or search response. It is
// informational only; the client never advances pages on its own.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`

	// A string on searches and a number on collection listings. Pages are
	// capped at 24, 32 or 64 results depending on the resolved per-page
	// setting.
	PerPage json.Number `json:"per_page"`
	Total   int         `json:"total"`

	// Query and Seed only appear on searches. The seed can be passed
	// between pages to avoid repeats while sorting by random.
	Query *MetaQuery `json:"query"`
	Seed  string     `json:"seed"`
}

// Listing is one page of wallpapers from a collection or a search. The
// wallpapers are materialized at construction and can be ranged over any
// number of times without re-fetching; another page is a new top-level call
// with an incremented "page" parameter.
type Listing struct {
	Meta Meta

	wallpapers []*Wallpaper
}

// Collection listings and search results share the wire shape.
type (
	CollectionListing = Listing
	SearchResults     = Listing
)

// Wallpapers returns the page's wallpapers in response order.
func (l *Listing) Wallpapers() []*Wallpaper {
	return l.wallpapers
}

// Len is the number of wallpapers on this page.
func (l *Listing) Len() int {
	return len(l.wallpapers)
}

func parseListing(c *Wallhaven, entity string, env *envelope) (*Listing, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, &MalformedResponseError{Entity: entity, Field: "data", Err: err}
	}
	if env.Meta == nil {
		return nil, &MalformedResponseError{Entity: entity, Field: "meta"}
	}

	l := &Listing{wallpapers: make([]*Wallpaper, 0, len(items))}
	if err := json.Unmarshal(env.Meta, &l.Meta); err != nil {
		return nil, &MalformedResponseError{Entity: entity, Field: "meta", Err: err}
	}
	for _, item := range items {
		wp, err := parseWallpaper(c, item)
		if err != nil {
			return nil, err
		}
		l.wallpapers = append(l.wallpapers, wp)
	}
	return l, nil
}
