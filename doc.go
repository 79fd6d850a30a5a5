// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package fizzbuzz generates the FizzBuzz sequence.
//
// For each index i in the inclusive range [1, n], exactly one token is
// produced. The first matching rule wins:
//
//  1. If i is divisible by 15, the token is [FizzBuzz].
//  2. If i is divisible by 3, the token is [Fizz].
//  3. If i is divisible by 5, the token is [Buzz].
//  4. Otherwise, the token is the decimal representation of i.
//
// An upper bound of zero or less describes an empty sequence. This is
// not an error.
//
// # Producing tokens
//
// [Token] maps a single index to its token. [Tokens] returns the whole
// sequence as a slice, while [Seq] and [All] return repeatable
// iterators that compute each token on demand.
//
//	for tok := range fizzbuzz.Seq(15) {
//	    fmt.Println(tok)
//	}
//
// # Writing output
//
// [Write] emits one token per line to an [io.Writer]. If the supplied
// context is a [stopper.Context], a soft stop is honored between
// tokens: output written so far is flushed and [stopper.ErrStopped] is
// returned.
//
//	ctx := stopper.WithContext(context.Background())
//	err := fizzbuzz.Write(ctx, os.Stdout, fizzbuzz.DefaultBound)
package fizzbuzz
