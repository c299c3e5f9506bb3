package wallhaven

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Uploader is the account a wallpaper was uploaded by. Only present on a
// direct wallpaper fetch.
type Uploader struct {
	Username string            `json:"username"`
	Group    string            `json:"group"`
	Avatar   map[string]string `json:"avatar"`
}

// Tag classifies wallpapers. Purity is one of sfw, sketchy or nsfw.
type Tag struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Alias      string `json:"alias"`
	CategoryID int    `json:"category_id"`
	Category   string `json:"category"`
	Purity     string `json:"purity"`
	CreatedAt  string `json:"created_at"`
}

// Wallpaper is a single wallpaper record. Instances are immutable once
// parsed; Save is the only operation with a side effect.
type Wallpaper struct {
	ID         string            `json:"id"`
	URL        string            `json:"url"`
	ShortURL   string            `json:"short_url"`
	Views      int               `json:"views"`
	Favorites  int               `json:"favorites"`
	Source     string            `json:"source"`
	Purity     string            `json:"purity"`
	Category   string            `json:"category"`
	DimensionX int               `json:"dimension_x"`
	DimensionY int               `json:"dimension_y"`
	Resolution string            `json:"resolution"`
	Ratio      string            `json:"ratio"`
	FileSize   int64             `json:"file_size"`
	FileType   string            `json:"file_type"`
	CreatedAt  string            `json:"created_at"`
	Colors     []string          `json:"colors"`
	Path       string            `json:"path"`
	Thumbs     map[string]string `json:"thumbs"`

	// Search results and collection listings omit both of these.
	Tags     []Tag     `json:"tags"`
	Uploader *Uploader `json:"uploader"`

	client *Wallhaven
}

func (wp *Wallpaper) Width() int  { return wp.DimensionX }
func (wp *Wallpaper) Height() int { return wp.DimensionY }

// Extension converts the stored file type to a file extension. Both MIME
// types ("image/png") and bare types ("png") occur in responses.
func (wp *Wallpaper) Extension() string {
	t := wp.FileType
	if i := strings.IndexByte(t, '/'); i >= 0 {
		t = t[i+1:]
	}
	switch t {
	case "jpeg", "jpg":
		return ".jpg"
	case "png":
		return ".png"
	}
	return ""
}

// Filename is the name Save writes, e.g. "8oxreo.png".
func (wp *Wallpaper) Filename() string {
	return wp.ID + wp.Extension()
}

// ReadableSize renders the file size as a human friendly string.
func (wp *Wallpaper) ReadableSize() string {
	const unit = 1000
	if wp.FileSize < unit {
		return fmt.Sprintf("%dB", wp.FileSize)
	}
	div, exp := int64(unit), 0
	for n := wp.FileSize / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f%cB", float64(wp.FileSize)/float64(div), "kMGTP"[exp])
}

func parseWallpaper(c *Wallhaven, raw json.RawMessage) (*Wallpaper, error) {
	var wp Wallpaper
	if err := json.Unmarshal(raw, &wp); err != nil {
		return nil, &MalformedResponseError{Entity: "wallpaper", Err: err}
	}
	switch {
	case wp.ID == "":
		return nil, &MalformedResponseError{Entity: "wallpaper", Field: "id"}
	case wp.Path == "":
		return nil, &MalformedResponseError{Entity: "wallpaper", Field: "path"}
	}
	wp.client = c
	return &wp, nil
}

func parseTag(raw json.RawMessage) (*Tag, error) {
	var t Tag
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, &MalformedResponseError{Entity: "tag", Err: err}
	}
	if t.ID == 0 {
		return nil, &MalformedResponseError{Entity: "tag", Field: "id"}
	}
	if t.Name == "" {
		return nil, &MalformedResponseError{Entity: "tag", Field: "name"}
	}
	return &t, nil
}

// UserSettings are an account's browsing settings. They are read-only
// through the API; the resolver treats them as one of its inputs and never
// mutates them.
type UserSettings struct {
	ThumbSize     string   `json:"thumb_size"`
	PerPage       string   `json:"per_page"`
	Purity        []string `json:"purity"`
	Categories    []string `json:"categories"`
	Resolutions   []string `json:"resolutions"`
	AspectRatios  []string `json:"aspect_ratios"`
	ToplistRange  string   `json:"toplist_range"`
	TagBlacklist  []string `json:"tag_blacklist"`
	UserBlacklist []string `json:"user_blacklist"`

	// Not part of every settings payload; translated only when present.
	Sorting string `json:"sorting"`
}

func parseUserSettings(raw json.RawMessage) (*UserSettings, error) {
	var s UserSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &MalformedResponseError{Entity: "settings", Err: err}
	}
	return &s, nil
}

// Collection describes a collection itself, not its wallpapers; those come
// from GetCollectionListing.
type Collection struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Views int    `json:"views"`

	// 1 for public, 0 for private.
	Public int `json:"public"`
	Count  int `json:"count"`

	// The API does not repeat the owner; stamped from the request when known.
	Username string `json:"-"`
}

func (c *Collection) IsPublic() bool {
	return c.Public == 1
}

func parseCollection(raw json.RawMessage, username string) (*Collection, error) {
	var c Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, &MalformedResponseError{Entity: "collection", Err: err}
	}
	if c.ID == 0 {
		return nil, &MalformedResponseError{Entity: "collection", Field: "id"}
	}
	c.Username = username
	return &c, nil
}
