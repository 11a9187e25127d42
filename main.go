// Dokdo is a CLI toolkit for manipulating microbiome sequencing metadata
// and derived tables (sample-metadata merges, taxonomic collapsing,
// manifest generation, and friends).
package main

import "github.com/JetbluejetYJ/dokdo/cmd"

func main() {
	cmd.Execute()
}
