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

func SettingsScript(cmd *go_console.Script) go_console.ExitCode {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := utils.NewLogger("settings")
	client, _ := buildClient(logger)

	settings, err := client.GetUserSettings(ctx)
	if err != nil {
		logger.Error("failed to fetch settings", slogx.Error(err))
		return go_console.ExitError
	}

	fmt.Printf("Thumb size:    %s\n", settings.ThumbSize)
	fmt.Printf("Per page:      %s\n", settings.PerPage)
	fmt.Printf("Categories:    %s\n", strings.Join(settings.Categories, ", "))
	fmt.Printf("Purity:        %s\n", strings.Join(settings.Purity, ", "))
	fmt.Printf("Toplist range: %s\n", settings.ToplistRange)
	if len(settings.Resolutions) > 0 {
		fmt.Printf("Resolutions:   %s\n", strings.Join(settings.Resolutions, ", "))
	}
	if len(settings.AspectRatios) > 0 {
		fmt.Printf("Ratios:        %s\n", strings.Join(settings.AspectRatios, ", "))
	}
	if len(settings.TagBlacklist) > 0 {
		fmt.Printf("Tag blacklist: %s\n", strings.Join(settings.TagBlacklist, ", "))
	}

	return go_console.ExitSuccess
}
