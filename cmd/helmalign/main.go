// Package main provides the helmalign CLI application.
// helmalign aligns HELM-notated biopolymers with MAFFT in text mode.
package main

import (
	"github.com/pepsar/helmalign/cmd"
)

func main() {
	cmd.Execute()
}
