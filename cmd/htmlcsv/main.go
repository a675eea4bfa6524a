// Command htmlcsv converts HTML quote tables in *.txt files to CSV.
package main

import (
	"fmt"
	"os"

	"github.com/tsawler/htmlcsv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
