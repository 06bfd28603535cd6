package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cxykevin/tinyjson/config"
	"github.com/cxykevin/tinyjson/internal/cli"
	"github.com/cxykevin/tinyjson/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.Load()
	log.Load()
	defer log.Shutdown()
	defer log.SolvePanic()

	// 读取环境变量 TINYJSON_WORKDIR
	if workdir := os.Getenv("TINYJSON_WORKDIR"); workdir != "" {
		if err := os.Chdir(workdir); err != nil {
			fmt.Fprintln(os.Stderr, "tinyjson:", err)
			return 1
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(config.GlobalConfig)
	defer c.Close()

	err := c.RootCommand().ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, cli.ErrFailed):
		return 1
	default:
		log.New("main").Error("command failed: %v", err)
		fmt.Fprintln(os.Stderr, "tinyjson:", err)
		return 1
	}
}
