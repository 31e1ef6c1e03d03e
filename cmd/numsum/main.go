// numsum computes numeric summaries of newline-separated samples and packs
// samples into sample blobs.
//
// Usage:
//
//	numsum describe [file]
//	numsum normalize [--method zscore|minmax] [file]
//	numsum outliers [--method iqr|zscore] [--threshold t] [file]
//	numsum regress [--models linear,power,...] [--min-r2 r] (xfile yfile | file)
//	numsum pack [--name n] [--encoding raw|gorilla] [--compression none|zstd|s2|lz4|snappy] in out
//	numsum unpack [--describe] in
//
// Input is read from stdin when no file or "-" is given. Defaults come from
// the YAML file named by --config; flags override it.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
