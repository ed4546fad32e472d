// Command jts inspects, formats, packs and unpacks JSON Time Series documents.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/jts/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
