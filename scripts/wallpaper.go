package scripts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"wallhaven-go/utils"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/cappuccinotm/slogx"
)

func WallpaperScript(cmd *go_console.Script) go_console.ExitCode {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := utils.NewLogger("wallpaper")
	client, config := buildClient(logger)

	id := cmd.Input.Argument("wallpaper_id")
	wp, err := client.GetWallpaper(ctx, id)
	if err != nil {
		logger.Error("failed to fetch wallpaper", slogx.Error(err))
		return go_console.ExitError
	}

	fmt.Printf("%s  %s %s/%s  %s\n", wp.ID, wp.Resolution, wp.Category, wp.Purity, wp.ReadableSize())
	if wp.Uploader != nil {
		fmt.Printf("Uploaded by %s at %s\n", wp.Uploader.Username, wp.CreatedAt)
	}
	if len(wp.Tags) > 0 {
		names := make([]string, 0, len(wp.Tags))
		for _, tag := range wp.Tags {
			names = append(names, tag.Name)
		}
		fmt.Printf("Tags: %s\n", strings.Join(names, ", "))
	}

	path, err := wp.Save(ctx, config.SaveDir)
	if err != nil {
		logger.Error("failed to save wallpaper", slogx.Error(err))
		return go_console.ExitError
	}
	fmt.Printf("Saved to %s\n", path)

	return go_console.ExitSuccess
}
