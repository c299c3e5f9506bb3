package wallhaven

import "context"

// Search performs one search with the client's Params. With an API key the
// account's browsing settings are fetched first and merged in under the
// explicit parameters, unless SkipBrowsingSettings is set. Only the first
// page is returned; request the next one by setting the "page" parameter
// and searching again.
func (w *Wallhaven) Search(ctx context.Context) (*SearchResults, error) {
	var settings *UserSettings
	if w.apiKey != "" && !w.SkipBrowsingSettings {
		s, err := w.GetUserSettings(ctx)
		if err != nil {
			return nil, err
		}
		settings = s
	}

	params := resolveParams(settings, w.Params)
	rq := w.httpClient.Get("/search").SetQueryParams(params)
	env, err := w.getJSON(ctx, "search", "", rq)
	if err != nil {
		return nil, err
	}
	return parseListing(w, "search results", env)
}
