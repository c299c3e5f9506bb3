package wallhaven

import "context"

// GetUserSettings reads the authenticated account's browsing settings. An
// API key is required; without one this fails before any request is made.
func (w *Wallhaven) GetUserSettings(ctx context.Context) (*UserSettings, error) {
	if err := w.requireKey("get-user-settings"); err != nil {
		return nil, err
	}
	env, err := w.getJSON(ctx, "get-user-settings", "", w.httpClient.Get("/settings"))
	if err != nil {
		return nil, err
	}
	return parseUserSettings(env.Data)
}
