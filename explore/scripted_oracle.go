// SPDX-License-Identifier: MIT
package explore

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// scriptStep is one entry in a ScriptedOracle's YAML script. Accept answers
// the next Validate call; when false, Name/Attrs answer the Counterexample
// call the Session is guaranteed to make immediately afterwards.
type scriptStep struct {
	Accept bool     `yaml:"accept"`
	Name   string   `yaml:"name,omitempty"`
	Attrs  []string `yaml:"attrs,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptedOracle is a deterministic Oracle test double driven by a flat
// sequence of pre-recorded answers, decoded from YAML. It is the batch
// binding alongside interactive terminal implementations.
type ScriptedOracle struct {
	steps []scriptStep
	pos   int
}

// LoadScriptedOracle decodes a script from r. Each step answers one
// Validate call; a rejecting step's Name/Attrs answer the Counterexample
// call that follows it.
func LoadScriptedOracle(r io.Reader) (*ScriptedOracle, error) {
	var sf scriptFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("explore: decoding scripted oracle: %w", err)
	}
	return &ScriptedOracle{steps: sf.Steps}, nil
}

// Validate returns the next scripted answer. Accepting steps are consumed
// immediately; rejecting steps are held back for the paired Counterexample
// call.
func (o *ScriptedOracle) Validate(premise, conclusion []string) bool {
	if o.pos >= len(o.steps) {
		panic("explore: ScriptedOracle script exhausted on Validate")
	}
	step := o.steps[o.pos]
	if step.Accept {
		o.pos++
	}
	return step.Accept
}

// Counterexample returns the current step's recorded name/attrs and
// consumes it. Must only be called immediately after a rejecting Validate.
func (o *ScriptedOracle) Counterexample() (string, []string) {
	if o.pos >= len(o.steps) {
		panic("explore: ScriptedOracle script exhausted on Counterexample")
	}
	step := o.steps[o.pos]
	o.pos++
	return step.Name, step.Attrs
}
