// SPDX-License-Identifier: MIT

// Package cxtgen generates synthetic formal contexts for tests and demos:
// an Erdős–Rényi-style random incidence, each (object, attribute) pair
// included independently with a fixed probability.
package cxtgen
