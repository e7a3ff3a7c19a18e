package main

import (
	"log/slog"
	"os"

	"github.com/bodul/crossgen/cmd"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	cmd.Execute()
}
