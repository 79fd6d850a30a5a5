// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package fizzbuzz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/trace"

	"vawter.tech/stopper/v2"
)

// Write emits the tokens for the indexes 1 through n, one per line, to
// the writer. It is equivalent to calling [WriteFunc] with a nil format
// function.
func Write(ctx context.Context, w io.Writer, n int) error {
	return WriteFunc(ctx, w, n, nil)
}

// WriteFunc emits the tokens for the indexes 1 through n, one per line,
// to the writer. If format is non-nil, each token is passed through it
// before being written.
//
// The context is checked before each token is written. If the context
// is a [stopper.Context] that has begun stopping, any buffered output
// is flushed and [stopper.ErrStopped] is returned. If the context has
// been canceled, its error is returned.
func WriteFunc(
	ctx context.Context, w io.Writer, n int, format func(string) string,
) error {
	defer trace.StartRegion(ctx, "fizzbuzz write").End()

	buf := bufio.NewWriter(w)
	for i, tok := range All(n) {
		if err := checkContext(ctx); err != nil {
			return errors.Join(err, flush(buf))
		}
		if format != nil {
			tok = format(tok)
		}
		if _, err := buf.WriteString(tok); err != nil {
			return fmt.Errorf("fizzbuzz: writing token %d: %w", i, err)
		}
		if err := buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("fizzbuzz: writing token %d: %w", i, err)
		}
	}
	return flush(buf)
}

// checkContext reports a soft stop before a hard stop.
func checkContext(ctx context.Context) error {
	if stopper.IsStopping(ctx) {
		return stopper.ErrStopped
	}
	return ctx.Err()
}

func flush(buf *bufio.Writer) error {
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("fizzbuzz: flushing output: %w", err)
	}
	return nil
}
