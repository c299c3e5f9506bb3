package wallhaven

import "context"

// GetWallpaper fetches a single wallpaper by id, e.g. "8oxreo". NSFW
// wallpapers are only visible when an API key is configured.
func (w *Wallhaven) GetWallpaper(ctx context.Context, id string) (*Wallpaper, error) {
	rq := w.httpClient.Get("/w/{id}").SetPathParam("id", id)
	env, err := w.getJSON(ctx, "get-wallpaper", id, rq)
	if err != nil {
		return nil, err
	}
	return parseWallpaper(w, env.Data)
}
