// Command circuitsim-server boots the HTTP surface around a single
// in-process circuit.Engine.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voxellogic/circuitsim/internal/app"
	"github.com/voxellogic/circuitsim/internal/config"
)

var version = "dev"

func main() {
	c, err := config.Load(config.Options{ConfigName: "circuitsim", ConfigPath: "."})
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	srv, err := app.NewServer(app.ServerOptions{C: c, Version: version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "building server: %v\n", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(c.GetInt("port"), c.GetBool("local_only"))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
			os.Exit(1)
		}
	}
}
