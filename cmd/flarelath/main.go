// Command flarelath detects and ranks flares in Mapper graphs stored as YAML
// graph documents.
//
//	flarelath flareness graph.yaml acme globex
//	flarelath detect graph.yaml --centrality closeness
//	flarelath annotate graph.yaml
//	flarelath demo --shape star --size 11
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
