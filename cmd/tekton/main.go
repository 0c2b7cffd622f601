package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/tekton/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		msg.Error("%v", err)
		os.Exit(1) //nolint:gocritic // cancel is only there for the signal handler
	}
}

func run(ctx context.Context) error {
	command, err := cmd.Build()
	if err != nil {
		return err
	}

	return command.Execute(ctx)
}
