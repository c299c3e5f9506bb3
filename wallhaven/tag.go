package wallhaven

import (
	"context"
	"strconv"
)

// GetTag fetches a tag by its numeric id.
func (w *Wallhaven) GetTag(ctx context.Context, id int) (*Tag, error) {
	idStr := strconv.Itoa(id)
	rq := w.httpClient.Get("/tag/{id}").SetPathParam("id", idStr)
	env, err := w.getJSON(ctx, "get-tag", idStr, rq)
	if err != nil {
		return nil, err
	}
	return parseTag(env.Data)
}
