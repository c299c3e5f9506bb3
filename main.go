package main

import (
	"wallhaven-go/scripts"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/DrSmithFr/go-console/input/argument"
)

func main() {
	script := go_console.Command{
		Description: "Wallhaven API client",
		Scripts: []*go_console.Script{
			{
				Name:        "search",
				Description: "Search for wallpapers",
				Arguments: []go_console.Argument{
					{
						Name:        "query",
						Description: "Search terms (+include, -exclude, @user, id:N, type:png, like:ID)",
						Value:       argument.List | argument.Optional,
					},
				},
				Runner: scripts.SearchScript,
			},
			{
				Name:        "wallpaper",
				Description: "Fetch a wallpaper and save it to the configured directory",
				Arguments: []go_console.Argument{
					{
						Name:        "wallpaper_id",
						Description: "ID of the wallpaper, e.g. 8oxreo",
						Value:       argument.Required,
					},
				},
				Runner: scripts.WallpaperScript,
			},
			{
				Name:        "tag",
				Description: "Show a tag",
				Arguments: []go_console.Argument{
					{
						Name:        "tag_id",
						Description: "Numeric ID of the tag",
						Value:       argument.Required,
					},
				},
				Runner: scripts.TagScript,
			},
			{
				Name:        "settings",
				Description: "Show the authenticated user's browsing settings",
				Runner:      scripts.SettingsScript,
			},
			{
				Name:        "collections",
				Description: "List a user's public collections, or all collections via the API key",
				Arguments: []go_console.Argument{
					{
						Name:        "username",
						Description: "Owner of the collections; omit to use the API key",
						Value:       argument.Optional,
					},
				},
				Runner: scripts.CollectionsScript,
			},
			{
				Name:        "listing",
				Description: "List the wallpapers in a public collection",
				Arguments: []go_console.Argument{
					{
						Name:        "username",
						Description: "Owner of the collection",
						Value:       argument.Required,
					},
					{
						Name:        "collection_id",
						Description: "Numeric ID of the collection",
						Value:       argument.Required,
					},
				},
				Runner: scripts.ListingScript,
			},
			{
				Name:        "private-listing",
				Description: "List the wallpapers in a private collection (requires an API key)",
				Arguments: []go_console.Argument{
					{
						Name:        "username",
						Description: "Owner of the collection",
						Value:       argument.Required,
					},
					{
						Name:        "collection_id",
						Description: "Numeric ID of the collection",
						Value:       argument.Required,
					},
				},
				Runner: scripts.PrivateListingScript,
			},
		},
	}
	script.Run()
}
