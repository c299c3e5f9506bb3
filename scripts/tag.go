package scripts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"wallhaven-go/utils"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/cappuccinotm/slogx"
)

func TagScript(cmd *go_console.Script) go_console.ExitCode {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	tagIdStr := cmd.Input.Argument("tag_id")
	tagId, err := strconv.Atoi(tagIdStr)
	if err != nil {
		fmt.Printf("Invalid tag_id: %s\n", err.Error())
		return go_console.ExitError
	}

	logger := utils.NewLogger("tag")
	client, _ := buildClient(logger)

	tag, err := client.GetTag(ctx, tagId)
	if err != nil {
		logger.Error("failed to fetch tag", slogx.Error(err))
		return go_console.ExitError
	}

	fmt.Printf("#%d %s (%s, %s)\n", tag.ID, tag.Name, tag.Category, tag.Purity)
	if tag.Alias != "" {
		fmt.Printf("Aliases: %s\n", tag.Alias)
	}
	fmt.Printf("Created at %s\n", tag.CreatedAt)

	return go_console.ExitSuccess
}
