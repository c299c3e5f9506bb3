package scripts

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"wallhaven-go/utils"
	"wallhaven-go/wallhaven"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/cappuccinotm/slogx"
)

func SearchScript(cmd *go_console.Script) go_console.ExitCode {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := utils.NewLogger("search")
	client, _ := buildClient(logger)

	terms := cmd.Input.ArgumentList("query")
	if len(terms) > 0 {
		query, err := wallhaven.ParseQuery(strings.Join(terms, " "))
		if err != nil {
			fmt.Printf("Invalid query: %s\n", err.Error())
			return go_console.ExitError
		}
		client.Params.Set(wallhaven.ParamQuery, query.Param())
	}

	results, err := client.Search(ctx)
	if err != nil {
		logger.Error("search failed", slogx.Error(err))
		return go_console.ExitError
	}

	meta := results.Meta
	fmt.Printf("Page %d/%d, %d results total\n", meta.CurrentPage, meta.LastPage, meta.Total)
	for _, wp := range results.Wallpapers() {
		fmt.Printf("%-8s %-11s %-8s %-8s %s\n", wp.ID, wp.Resolution, wp.Purity, wp.Category, wp.URL)
	}

	return go_console.ExitSuccess
}
