// SPDX-License-Identifier: MIT
package explore

// Oracle answers the two questions attribute exploration needs: whether a
// proposed implication holds, and, when it doesn't, which object
// contradicts it. Implementations may be interactive (terminal prompts),
// scripted (ScriptedOracle), or programmatic validators — the Session
// never assumes which.
type Oracle interface {
	// Validate reports whether the implication premise→conclusion holds in
	// the oracle's intended universe. Both slices hold attribute names in
	// the order the Session observed them.
	Validate(premise, conclusion []string) bool

	// Counterexample is called only after a Validate returned false. It
	// must return a non-empty, trimmed object name and the (possibly
	// empty) set of attribute names that object possesses; every named
	// attribute must already exist in the context.
	Counterexample() (name string, attrs []string)
}
