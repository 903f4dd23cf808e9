package main

import (
	"classroom/cmd/toolkit/commands"
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewRoot(ctx).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, commands.ErrorStyle.Render("Erro: "+err.Error()))
		return 1
	}

	return 0
}
