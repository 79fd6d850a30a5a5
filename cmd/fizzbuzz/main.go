// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Command fizzbuzz prints the FizzBuzz sequence, one token per line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/scott-cotton/cli"
	"vawter.tech/fizzbuzz"
	"vawter.tech/stopper/v2"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

type mainConfig struct {
	*cli.Command
	N int `cli:"name=n desc='inclusive upper bound of the sequence (default: 100)'"`
}

// MainCommand returns the fizzbuzz command.
func MainCommand() *cli.Command {
	cfg := &mainConfig{N: fizzbuzz.DefaultBound}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "fizzbuzz").
		WithSynopsis("fizzbuzz [-n bound]").
		WithDescription("Print the FizzBuzz sequence from 1 to the upper bound.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *mainConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		if errors.Is(err, cli.ErrUsage) {
			return err
		}
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrUsage, args)
	}
	return run(cc.Go, cc.Out, cfg.N)
}

// run writes the sequence to out. An interrupt or termination signal
// gracefully stops the output.
func run(ctx context.Context, out io.Writer, n int, opts ...stopper.ConfigOption) error {
	s := stopper.WithContext(ctx, opts...)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ch)
	stopper.StopOnReceive(s, ch)

	err := s.Call(func(ctx stopper.Context) error {
		return fizzbuzz.Write(ctx, out, n)
	})
	s.Stop()
	return errors.Join(err, s.Wait())
}
