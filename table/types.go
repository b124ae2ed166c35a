// SPDX-License-Identifier: MIT

package table

import (
	"errors"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/uca/mapping"
)

// ErrEmptyTable indicates an extremal query on a table with no mappings.
var ErrEmptyTable = errors.New("table: table has no mappings")

// Sentinel messages for option constructors, which panic on meaningless input.
var (
	errBadWorkers     = errors.New("table: workers must be positive")
	errBadMinParallel = errors.New("table: min parallel size must be positive")
)

const (
	// DefaultWorkers keeps queries on the calling goroutine.
	DefaultWorkers = 1
	// DefaultMinParallel is the table size below which queries stay sequential
	// even when more workers are configured.
	DefaultMinParallel = 4096
)

// Options configures a Table.
//
// Workers     – maximum goroutines used by extremal queries (≥ 1).
// MinParallel – tables smaller than this are reduced sequentially (≥ 1).
// Form        – normalisation applied to Lookup keys and mapping characters.
type Options struct {
	Workers     int
	MinParallel int
	Form        norm.Form
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns sequential queries and NFD lookup keys.
func DefaultOptions() Options {
	return Options{
		Workers:     DefaultWorkers,
		MinParallel: DefaultMinParallel,
		Form:        norm.NFD,
	}
}

// WithWorkers sets the number of goroutines extremal queries may use.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(errBadWorkers.Error())
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithMinParallel sets the table size from which queries run in parallel.
// Panics if n < 1.
func WithMinParallel(n int) Option {
	if n < 1 {
		panic(errBadMinParallel.Error())
	}

	return func(o *Options) {
		o.MinParallel = n
	}
}

// WithForm sets the normalisation form used by Lookup.
func WithForm(f norm.Form) Option {
	return func(o *Options) {
		o.Form = f
	}
}

// Table is a collation element table (UTS10-D23). Build it with Build.
type Table struct {
	mappings []mapping.Mapping
	index    map[string]int // normalised characters → first mapping position
	opts     Options
}
