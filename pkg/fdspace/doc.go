// Package fdspace implements the core of a finite-domain constraint
// programming solver: bounded integer variables, arithmetic and
// disjunctive propagators, a fixed-point propagation engine, and a
// depth-first search tree built on freeze/restore space snapshots.
//
// The package is single-threaded and synchronous; no operation blocks on
// I/O and no state crosses a Space boundary without going through Freeze
// or Restore.
package fdspace
