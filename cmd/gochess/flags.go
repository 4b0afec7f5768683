// flags.go - Command-line flag definitions
package main

import "flag"

var (
	loadFile  = flag.String("load", "", "PGN file to load at startup")
	lineWidth = flag.Int("w", 80, "Maximum line length for PGN output")
	noColor   = flag.Bool("nocolor", false, "Disable board colouring")
	version   = flag.Bool("version", false, "Print version and exit")
)
