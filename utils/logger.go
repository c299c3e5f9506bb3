package utils

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/gookit/slog/rotatefile"
	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
)

type Logger = *slog.Logger

// NewLogger fans out to a tinted console handler and a rotating log file
// under logs/<module>.log.
func NewLogger(module string) Logger {
	level := slog.LevelDebug

	if err := os.MkdirAll("logs", os.ModePerm); err != nil {
		panic("failed to create logs directory: " + err.Error())
	}

	writer, err := rotatefile.NewConfig(
		path.Join("logs", fmt.Sprintf("%s.log", module)),
		func(c *rotatefile.Config) {
			c.MaxSize = 10 * 1024 * 1024 // 10 MB
			c.BackupNum = 5
			c.RotateTime = rotatefile.EveryMonth
			c.Compress = true
		},
	).Create()
	if err != nil {
		panic("failed to create log file: " + err.Error())
	}

	consoleHandler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})

	return slog.New(
		slogmulti.Fanout(
			consoleHandler,
			slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}),
		),
	).With("module", module)
}
