// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package fizzbuzz

import (
	"iter"
	"strconv"
)

// DefaultBound is the upper bound used when none is specified.
const DefaultBound = 100

// The non-numeric tokens.
const (
	Fizz     = "Fizz"
	Buzz     = "Buzz"
	FizzBuzz = Fizz + Buzz
)

// Token returns the token for the index i.
func Token(i int) string {
	switch {
	case i%15 == 0:
		return FizzBuzz
	case i%3 == 0:
		return Fizz
	case i%5 == 0:
		return Buzz
	default:
		return strconv.Itoa(i)
	}
}

// Tokens returns the tokens for the indexes 1 through n, inclusive. The
// returned slice is empty, but non-nil, if n is not positive.
func Tokens(n int) []string {
	ret := make([]string, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		ret = append(ret, Token(i))
	}
	return ret
}

// Seq returns a repeatable iterator over the tokens for the indexes 1
// through n, inclusive.
func Seq(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 1; i <= n; i++ {
			if !yield(Token(i)) {
				return
			}
		}
	}
}

// All is a pairwise version of [Seq] which also emits the 1-based index
// of each token.
func All(n int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 1; i <= n; i++ {
			if !yield(i, Token(i)) {
				return
			}
		}
	}
}
