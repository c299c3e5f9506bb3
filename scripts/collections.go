package scripts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"wallhaven-go/utils"
	"wallhaven-go/wallhaven"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/cappuccinotm/slogx"
)

func CollectionsScript(cmd *go_console.Script) go_console.ExitCode {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := utils.NewLogger("collections")
	client, _ := buildClient(logger)

	var collections []*wallhaven.Collection
	var err error
	if username := cmd.Input.Argument("username"); username != "" {
		collections, err = client.GetCollections(ctx, username)
	} else {
		collections, err = client.GetAllCollections(ctx)
	}
	if err != nil {
		logger.Error("failed to fetch collections", slogx.Error(err))
		return go_console.ExitError
	}

	if len(collections) == 0 {
		fmt.Println("No public collections")
		return go_console.ExitSuccess
	}
	for _, c := range collections {
		visibility := "private"
		if c.IsPublic() {
			visibility = "public"
		}
		fmt.Printf("%-8d %-30s %s, %d wallpapers, %d views\n", c.ID, c.Label, visibility, c.Count, c.Views)
	}

	return go_console.ExitSuccess
}
