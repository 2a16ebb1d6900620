// Command knitchart creates, inspects, and edits knitting chart files.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/knitvis/knit"
	"github.com/knitvis/knit/internal/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("knitchart"),
		kong.Description("Create, inspect, and edit knitting charts."),
	)

	if cli.Verbose {
		knit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err := ctx.Run(&commands.Context{Out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
