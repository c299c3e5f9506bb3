package scripts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"wallhaven-go/utils"
	"wallhaven-go/wallhaven"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/cappuccinotm/slogx"
)

func ListingScript(cmd *go_console.Script) go_console.ExitCode {
	return runListing(cmd, "listing", (*wallhaven.Wallhaven).GetCollectionListing)
}

func PrivateListingScript(cmd *go_console.Script) go_console.ExitCode {
	return runListing(cmd, "private-listing", (*wallhaven.Wallhaven).GetPrivateCollectionListing)
}

func runListing(
	cmd *go_console.Script,
	module string,
	fetch func(*wallhaven.Wallhaven, context.Context, string, int) (*wallhaven.CollectionListing, error),
) go_console.ExitCode {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	username := cmd.Input.Argument("username")
	collectionId, err := strconv.Atoi(cmd.Input.Argument("collection_id"))
	if err != nil {
		fmt.Printf("Invalid collection_id: %s\n", err.Error())
		return go_console.ExitError
	}

	logger := utils.NewLogger(module)
	client, _ := buildClient(logger)

	listing, err := fetch(client, ctx, username, collectionId)
	if err != nil {
		logger.Error("failed to fetch collection listing", slogx.Error(err))
		return go_console.ExitError
	}

	meta := listing.Meta
	fmt.Printf("Page %d/%d, %d wallpapers total\n", meta.CurrentPage, meta.LastPage, meta.Total)
	for _, wp := range listing.Wallpapers() {
		fmt.Printf("%-8s %-11s %-8s %s\n", wp.ID, wp.Resolution, wp.Purity, wp.URL)
	}

	return go_console.ExitSuccess
}
