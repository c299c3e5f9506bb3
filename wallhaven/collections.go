package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// GetCollections lists a user's public collections. The API hides private
// collections here, so a user whose only collection is private shows up as
// an empty list; GetAllCollections with that user's key sees it.
func (w *Wallhaven) GetCollections(ctx context.Context, username string) ([]*Collection, error) {
	rq := w.httpClient.Get("/collections/{username}").SetPathParam("username", username)
	env, err := w.getJSON(ctx, "get-collections", username, rq)
	if err != nil {
		return nil, err
	}
	return parseCollections(env.Data, username)
}

// GetAllCollections lists every collection, private ones included, owned by
// the authenticated account. An API key is required.
func (w *Wallhaven) GetAllCollections(ctx context.Context) ([]*Collection, error) {
	if err := w.requireKey("get-all-collections"); err != nil {
		return nil, err
	}
	env, err := w.getJSON(ctx, "get-all-collections", "", w.httpClient.Get("/collections"))
	if err != nil {
		return nil, err
	}
	return parseCollections(env.Data, "")
}

func parseCollections(data json.RawMessage, username string) ([]*Collection, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &MalformedResponseError{Entity: "collections", Field: "data", Err: err}
	}
	collections := make([]*Collection, 0, len(items))
	for _, item := range items {
		c, err := parseCollection(item, username)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, nil
}

// GetCollectionListing returns the first page of wallpapers in a public
// collection.
func (w *Wallhaven) GetCollectionListing(ctx context.Context, username string, collectionID int) (*CollectionListing, error) {
	return w.collectionListing(ctx, "get-collection-listing", username, collectionID)
}

// GetPrivateCollectionListing is the same endpoint gated on the API key,
// the way the website gates private collections.
func (w *Wallhaven) GetPrivateCollectionListing(ctx context.Context, username string, collectionID int) (*CollectionListing, error) {
	if err := w.requireKey("get-private-collection-listing"); err != nil {
		return nil, err
	}
	return w.collectionListing(ctx, "get-private-collection-listing", username, collectionID)
}

func (w *Wallhaven) collectionListing(ctx context.Context, op, username string, collectionID int) (*CollectionListing, error) {
	rq := w.httpClient.Get("/collections/{username}/{id}").
		SetPathParam("username", username).
		SetPathParam("id", strconv.Itoa(collectionID))
	env, err := w.getJSON(ctx, op, fmt.Sprintf("%s/%d", username, collectionID), rq)
	if err != nil {
		return nil, err
	}
	return parseListing(w, "collection listing", env)
}
