// Command flock runs the boids simulation headless or in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cli.Execute(ctx)
}
