// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/conceptual/fca/cxt"
	"github.com/conceptual/fca/explore"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: fcaexplore <file.cxt>")
		os.Exit(1)
	}

	path := os.Args[1]
	f, err := os.Open(path)
	if err != nil {
		color.Red("Failed to open %s: %s", path, err)
		os.Exit(1)
	}
	defer f.Close()

	ctx, err := cxt.Parse(f)
	if err != nil {
		color.Red("Failed to parse %s: %s", path, err)
		os.Exit(1)
	}
	color.Green("Loaded %s: %d objects, %d attributes", path, ctx.NumObjects(), ctx.NumAttributes())

	oracle := &terminalOracle{in: bufio.NewReader(os.Stdin), out: os.Stdout}
	session := explore.New(ctx, oracle)
	basis := session.Run()

	fmt.Println()
	color.Green("✅ Exploration complete: %d implications accepted", len(basis))
	for _, imp := range basis {
		fmt.Printf("  %v -> %v\n", imp.Premise.Slice(), imp.Conclusion.Slice())
	}
}

// terminalOracle is the interactive-terminal Oracle binding: the one
// component this library deliberately keeps out of core scope. It is a thin
// prompt/read loop over stdin/stdout, nothing more.
type terminalOracle struct {
	in  *bufio.Reader
	out *os.File
}

func (o *terminalOracle) Validate(premise, conclusion []string) bool {
	fmt.Fprintf(o.out, "Is %v -> %v valid? [y/n]: ", premise, conclusion)
	line, _ := o.in.ReadString('\n')
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}

func (o *terminalOracle) Counterexample() (string, []string) {
	fmt.Fprint(o.out, "Counterexample object name: ")
	name, _ := o.in.ReadString('\n')
	name = strings.TrimSpace(name)

	fmt.Fprint(o.out, "Its attributes (comma-separated): ")
	line, _ := o.in.ReadString('\n')
	var attrs []string
	for _, a := range strings.Split(line, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			attrs = append(attrs, a)
		}
	}
	return name, attrs
}
