// SPDX-License-Identifier: MIT

// Package explore implements interactive attribute exploration (C7): a
// closure-completion loop that drives implication.NextPreclosure against an
// oracle, growing the context with counterexample objects whenever the
// oracle rejects a proposed implication, until the accumulated preclosure
// reaches the full attribute set.
//
// The oracle is abstracted behind the Oracle interface: the
// core loop never assumes terminal I/O. ScriptedOracle is a YAML-driven test
// double; an interactive terminal binding is a separate concern outside
// this package's scope (cmd/fcaexplore).
//
// Complexity: O(|M|) oracle round-trips per accepted implication in the
// worst case, each backed by an AttrHull/NextPreclosure call.
// Concurrency: single-threaded; Session.Run must not be called concurrently
// with any enumerator borrowing the same context.
package explore
