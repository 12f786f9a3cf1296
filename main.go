package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/limix/lim/cmd/genotype"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := genotype.NewCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
